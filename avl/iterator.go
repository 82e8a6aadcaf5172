// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Min - the lowest key, false if the tree is empty
func (tree *Tree) Min() (Item, bool) {
	p := tree.First()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// Max - the highest key, false if the tree is empty
func (tree *Tree) Max() (Item, bool) {
	p := tree.Last()
	if nil == p {
		return nil, false
	}
	return p.key, true
}

// Next - return the node with the lowest key greater than key or nil
// if no more nodes.  The key itself need not be in the tree.
func (tree *Tree) Next(key Item) *Node {
	found := (*Node)(nil)
	p := tree.root
	for nil != p {
		if p.key.Compare(key) > 0 { // p.key > key
			found = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return found
}

// Prev - return the node with the highest key less than key or nil
// if no more nodes
func (tree *Tree) Prev(key Item) *Node {
	found := (*Node)(nil)
	p := tree.root
	for nil != p {
		if p.key.Compare(key) < 0 { // p.key < key
			found = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return found
}

// Iterator - an in-order cursor over a tree
//
// the pending path is kept on an explicit stack so only O(height)
// memory is used; the tree must not be modified while iterating
// unless Reset is called afterwards
type Iterator struct {
	tree    *Tree
	reverse bool
	stack   []*Node
	current *Node
}

// Iterator - cursor that visits keys in ascending order
//
//	for it := tree.Iterator(); it.Next(); {
//		use(it.Key(), it.Value())
//	}
func (tree *Tree) Iterator() *Iterator {
	it := &Iterator{
		tree:    tree,
		reverse: false,
	}
	it.Reset()
	return it
}

// ReverseIterator - cursor that visits keys in descending order
func (tree *Tree) ReverseIterator() *Iterator {
	it := &Iterator{
		tree:    tree,
		reverse: true,
	}
	it.Reset()
	return it
}

// Reset - restart from the beginning of the current tree contents
func (it *Iterator) Reset() {
	it.stack = it.stack[:0]
	it.current = nil
	it.descend(it.tree.root)
}

// push the path to the first node to visit in a sub-tree
func (it *Iterator) descend(p *Node) {
	for nil != p {
		it.stack = append(it.stack, p)
		if it.reverse {
			p = p.right
		} else {
			p = p.left
		}
	}
}

// Next - advance to the next node, false when no more nodes
func (it *Iterator) Next() bool {
	n := len(it.stack)
	if 0 == n {
		it.current = nil
		return false
	}
	p := it.stack[n-1]
	it.stack[n-1] = nil
	it.stack = it.stack[:n-1]

	if it.reverse {
		it.descend(p.left)
	} else {
		it.descend(p.right)
	}
	it.current = p
	return true
}

// Node - the current node, nil before the first Next or after the end
func (it *Iterator) Node() *Node {
	return it.current
}

// Key - key of the current node
func (it *Iterator) Key() Item {
	if nil == it.current {
		return nil
	}
	return it.current.key
}

// Value - value of the current node
func (it *Iterator) Value() interface{} {
	if nil == it.current {
		return nil
	}
	return it.current.value
}

// Traverse - call f for each key and value in ascending order until
// f returns false
func (tree *Tree) Traverse(f func(key Item, value interface{}) bool) {
	traverse(tree.root, f)
}

func traverse(p *Node, f func(Item, interface{}) bool) bool {
	if nil == p {
		return true
	}
	if !traverse(p.left, f) {
		return false
	}
	if !f(p.key, p.value) {
		return false
	}
	return traverse(p.right, f)
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.Count())
	tree.Traverse(func(key Item, _ interface{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
