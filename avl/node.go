// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative number if the receiver is less than the
// argument, zero if they are equal and a positive number if it is
// greater.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	height int         // 0 for a leaf
	size   int         // number of nodes in this sub-tree
}

// allocate a new leaf node
func newNode(key Item, value interface{}) *Node {
	return &Node{
		key:    key,
		value:  value,
		height: 0,
		size:   1,
	}
}

// clear a node that has been unlinked from the tree so a stale
// reference cannot reach the remaining nodes
func releaseNode(p *Node) {
	p.left = nil
	p.right = nil
	p.key = nil
	p.value = nil
	p.height = 0
	p.size = 0
}

// height of a sub-tree, -1 if absent
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// number of nodes in a sub-tree
func size(p *Node) int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute the cached height and size from the children
func (p *Node) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.size = 1 + size(p.left) + size(p.right)
}

// right height minus left height
func (p *Node) balanceFactor() int {
	return height(p.right) - height(p.left)
}
