// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
)

// worst case AVL height for n nodes
func heightBound(n int) float64 {
	return 1.44*math.Log2(float64(n+2)) - 0.328
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// random interleaved inserts and deletes compared against a map
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(20200101))

	for round := 0; round < 20; round += 1 {
		tree := avl.New()
		reference := make(map[int]int)

		for op := 0; op < 2000; op += 1 {
			k := r.Intn(500)
			if r.Intn(3) > 0 {
				_, exists := reference[k]
				added := tree.Insert(intItem(k), op)
				require.Equal(t, !exists, added, "round: %d insert: %d", round, k)
				reference[k] = op
			} else {
				expected, exists := reference[k]
				value, removed := tree.Delete(intItem(k))
				require.Equal(t, exists, removed, "round: %d delete: %d", round, k)
				if exists {
					require.Equal(t, expected, value, "round: %d delete value: %d", round, k)
				}
				delete(reference, k)
			}

			if 0 == op%97 {
				require.NoError(t, tree.Check(), "round: %d op: %d", round, op)
			}
		}

		require.NoError(t, tree.Check(), "round: %d", round)
		require.Equal(t, len(reference), tree.Count(), "round: %d count", round)
		assert.Equal(t, sortedKeys(reference), intKeys(tree), "round: %d keys", round)

		for k := 0; k < 500; k += 1 {
			value, found := tree.Find(intItem(k))
			expected, exists := reference[k]
			require.Equal(t, exists, found, "round: %d find: %d", round, k)
			if exists {
				require.Equal(t, expected, value, "round: %d find value: %d", round, k)
			}
		}
	}
}

func TestHeightBound(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := avl.New()

	for n := 1; n <= 20000; n += 1 {
		for !tree.Insert(intItem(r.Int()), nil) {
		}
		if 0 == n%1000 || n < 64 {
			bound := heightBound(tree.Count())
			require.True(t, float64(tree.Height()) <= bound, "n: %d height: %d bound: %.2f", n, tree.Height(), bound)
		}
	}
	require.NoError(t, tree.Check())

	// ascending inserts are the classic degenerate case for a plain BST
	tree = avl.New()
	for k := 0; k < 1<<14-1; k += 1 {
		tree.Insert(intItem(k), nil)
	}
	assert.Equal(t, 13, tree.Height(), "ascending insert of 2^14-1 keys is perfect")
	assert.True(t, float64(tree.Height()) <= heightBound(tree.Count()))
	require.NoError(t, tree.Check())

	// shrink again and keep checking the bound
	for k := 0; k < 1<<14; k += 3 {
		tree.Delete(intItem(k))
		if 0 == k%999 {
			require.True(t, float64(tree.Height()) <= heightBound(tree.Count()), "k: %d", k)
		}
	}
	require.NoError(t, tree.Check())
}

// insert then delete of a new key leaves the same key sequence
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := avl.New()
	for i := 0; i < 300; i += 1 {
		tree.Insert(intItem(2*r.Intn(1000)), i)
	}
	before := intKeys(tree)

	for i := 0; i < 200; i += 1 {
		k := intItem(2*r.Intn(1000) + 1) // odd so never present
		require.True(t, tree.Insert(k, "temporary"))
		value, removed := tree.Delete(k)
		require.True(t, removed)
		require.Equal(t, "temporary", value)
		require.Equal(t, before, intKeys(tree), "after: %d", k)
		require.NoError(t, tree.Check())
	}
}

func TestRankAndIndex(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{49, 46, 43, 79, 64, 83} {
		tree.Insert(intItem(k), nil)
	}

	//  43 46 49 64 79 83
	assert.Equal(t, intItem(83), tree.Get(5).Key(), "sixth item")
	assert.Equal(t, intItem(43), tree.Get(0).Key(), "first item")
	assert.Nil(t, tree.Get(6), "past the end")
	assert.Nil(t, tree.Get(-1), "before the start")

	assert.Equal(t, 5, tree.Rank(intItem(80)), "keys <= 80")
	assert.Equal(t, 0, tree.Rank(intItem(10)), "keys <= 10")
	assert.Equal(t, 6, tree.Rank(intItem(100)), "keys <= 100")
	assert.Equal(t, 3, tree.Rank(intItem(49)), "keys <= 49")

	_, index := tree.Search(intItem(64))
	assert.Equal(t, 3, index, "index of 64")
	node, index := tree.Search(intItem(65))
	assert.Nil(t, node, "search for missing key")
	assert.Equal(t, -1, index, "index of missing key")
}
