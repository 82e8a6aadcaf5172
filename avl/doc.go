// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree with subtree counts to
// allow indexing by position
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access.
//       Rotations rewrite several nodes, so readers must also be
//       excluded while an insert or delete is running.
//
// Each node caches the height of its sub-tree (a leaf is zero, an
// absent child is -1) and the number of nodes below it.  After every
// insert or delete the path back to the root is rebalanced with
// single or double rotations so the height stays within the AVL bound
// of 1.44*log2(n+2).
//
// This version allows for data associated with key, which is
// overwritten by an insert with the same key.  Delete of a node with
// two children copies the in-order successor's key and data into that
// node and removes the successor instead, so any *Node obtained
// before a delete must not be used afterwards.
package avl
