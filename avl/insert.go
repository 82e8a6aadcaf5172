// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns true if a new node was created; if the key already exists
// its value is replaced and the shape of the tree is not changed
func (tree *Tree) Insert(key Item, value interface{}) bool {
	added := false
	tree.root, added = insert(key, value, tree.root)
	return added
}

// internal routine for insert
func insert(key Item, value interface{}, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key, value), true
	}

	added := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, added = insert(key, value, p.left)
	case c < 0: // p.key < key
		p.right, added = insert(key, value, p.right)
	default:
		p.value = value
		return p, false
	}

	// an overwrite lower down leaves all heights unchanged
	if !added {
		return p, false
	}
	return rebalance(p), true
}
