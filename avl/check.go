// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// violations found by a full scan of the tree
type violations struct {
	order   bool
	height  bool
	balance bool
	count   bool
}

// Check - verify every invariant and return the first class of
// violation found, or nil if the tree is consistent
func (tree *Tree) Check() error {
	v := tree.scan()
	switch {
	case v.order:
		return fault.ErrOrderViolated
	case v.height:
		return fault.ErrHeightInconsistent
	case v.balance:
		return fault.ErrBalanceViolated
	case v.count:
		return fault.ErrCountInconsistent
	}
	return nil
}

// CheckOrder - keys strictly ascending in-order, so no duplicates
func (tree *Tree) CheckOrder() bool {
	return !tree.scan().order
}

// CheckHeights - cached heights match the sub-trees
func (tree *Tree) CheckHeights() bool {
	return !tree.scan().height
}

// CheckBalance - every node has sub-trees differing in height by at most one
func (tree *Tree) CheckBalance() bool {
	return !tree.scan().balance
}

// CheckCounts - cached node counts match the sub-trees
func (tree *Tree) CheckCounts() bool {
	return !tree.scan().count
}

func (tree *Tree) scan() violations {
	v := violations{}
	checkNode(tree.root, nil, nil, &v)
	return v
}

// internal: consistency checker
//
// low and high are the exclusive bounds inherited from the ancestors
// (nil for unbounded); returns the actual height and node count
func checkNode(p *Node, low Item, high Item, v *violations) (int, int) {
	if nil == p {
		return -1, 0
	}
	if nil != low && p.key.Compare(low) <= 0 {
		v.order = true
	}
	if nil != high && p.key.Compare(high) >= 0 {
		v.order = true
	}

	hl, nl := checkNode(p.left, low, p.key, v)
	hr, nr := checkNode(p.right, p.key, high, v)

	h := hl
	if hr > h {
		h = hr
	}
	h += 1
	n := 1 + nl + nr

	if h != p.height {
		v.height = true
	}
	if hr-hl > 1 || hl-hr > 1 {
		v.balance = true
	}
	if n != p.size {
		v.count = true
	}
	return h, n
}
