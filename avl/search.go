// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
//
// returns the node and its zero based position in key order, or nil
// and -1 if not found
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	c := tree.key.Compare(key)
	switch {
	case c > 0: // tree.key > key
		return search(key, tree.left, index)
	case c < 0: // tree.key < key
		return search(key, tree.right, index+size(tree.left)+1)
	default:
		return tree, index + size(tree.left)
	}
}

// Find - return the value stored with a key
func (tree *Tree) Find(key Item) (interface{}, bool) {
	p, _ := tree.Search(key)
	if nil == p {
		return nil, false
	}
	return p.value, true
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key Item) bool {
	p, _ := tree.Search(key)
	return nil != p
}
