// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - index to specific item, nil if out of range
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	nl := size(tree.left)

	if index < nl {
		return get(index, tree.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, tree.right)
	}
	return tree
}

// Rank - number of keys in the tree less than or equal to key
func (tree *Tree) Rank(key Item) int {
	n := 0
	p := tree.root
	for nil != p {
		if p.key.Compare(key) <= 0 {
			n += 1 + size(p.left)
			p = p.right
		} else {
			p = p.left
		}
	}
	return n
}
