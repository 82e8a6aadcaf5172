// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// promote the left child of y:
//
//	      y            x
//	     / \          / \
//	    x   c  ==>   a   y
//	   / \              / \
//	  a   b            b   c
//
// returns the new sub-tree root
func rotateRight(y *Node) *Node {
	x := y.left
	y.left = x.right
	x.right = y

	// y is now below x so must be updated first
	y.update()
	x.update()
	return x
}

// mirror of rotateRight: promote the right child of x
func rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	y.left = x

	x.update()
	y.update()
	return y
}

// restore the balance of a node whose sub-trees differ in height by
// at most two, returns the possibly new sub-tree root which must
// replace the caller's link
func rebalance(p *Node) *Node {
	p.update()

	switch p.balanceFactor() {
	case +2: // right branch too tall
		if p.right.balanceFactor() < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)

	case -2: // left branch too tall
		if p.left.balanceFactor() > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}
	return p
}
