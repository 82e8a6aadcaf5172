// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return size(tree.root)
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Depth - number of links from the root to the node holding key, or
// -1 if the key is not in the tree
func (tree *Tree) Depth(key Item) int {
	depth := 0
	for p := tree.root; nil != p; depth += 1 {
		c := p.key.Compare(key)
		switch {
		case c > 0:
			p = p.left
		case c < 0:
			p = p.right
		default:
			return depth
		}
	}
	return -1
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Left - the left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Size - number of nodes in the sub-tree rooted at this node
func (p *Node) Size() int {
	return p.size
}
