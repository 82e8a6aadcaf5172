// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored with the key and true, or nil and
// false if the key was not in the tree
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	value := interface{}(nil)
	removed := false
	tree.root, value, removed = remove(key, tree.root)
	return value, removed
}

// DeleteMin - remove the node with the lowest key
func (tree *Tree) DeleteMin() (Item, interface{}, bool) {
	if nil == tree.root {
		return nil, nil, false
	}
	q := (*Node)(nil)
	tree.root, q = removeMin(tree.root)
	return detach(q)
}

// DeleteMax - remove the node with the highest key
func (tree *Tree) DeleteMax() (Item, interface{}, bool) {
	if nil == tree.root {
		return nil, nil, false
	}
	q := (*Node)(nil)
	tree.root, q = removeMax(tree.root)
	return detach(q)
}

// internal delete routine
func remove(key Item, p *Node) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}

	value := interface{}(nil)
	removed := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, value, removed = remove(key, p.left)
	case c < 0: // p.key < key
		p.right, value, removed = remove(key, p.right)
	default: // found: delete p
		value = p.value // preserve the value part
		if nil == p.left || nil == p.right {
			// zero or one child: the child is already balanced
			child := p.left
			if nil == child {
				child = p.right
			}
			releaseNode(p)
			return child, value, true
		}

		// two children: take over the successor's key and value
		// then remove the successor from the right branch
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.right, _, _ = remove(s.key, p.right)
		removed = true
	}

	if !removed {
		return p, nil, false
	}
	return rebalance(p), value, true
}

// unlink the lowest node of a sub-tree
// returns the new sub-tree root and the unlinked node
func removeMin(p *Node) (*Node, *Node) {
	if nil == p.left {
		return p.right, p
	}
	q := (*Node)(nil)
	p.left, q = removeMin(p.left)
	return rebalance(p), q
}

// unlink the highest node of a sub-tree
func removeMax(p *Node) (*Node, *Node) {
	if nil == p.right {
		return p.left, p
	}
	q := (*Node)(nil)
	p.right, q = removeMax(p.right)
	return rebalance(p), q
}

// extract the key and value of an unlinked node and release it
func detach(q *Node) (Item, interface{}, bool) {
	key := q.key
	value := q.value
	releaseNode(q)
	return key, value, true
}
