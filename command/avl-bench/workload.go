// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// key type for the benchmark trees
type intKey int

func (k intKey) Compare(x interface{}) int {
	y := x.(intKey)
	switch {
	case k < y:
		return -1
	case k > y:
		return 1
	}
	return 0
}

// workload - one benchmark round, every worker owns its own tree
type workload struct {
	size           int
	seed           int64
	workers        int
	removeFraction float64
	check          bool
}

// timings of a single worker
type phases struct {
	insert time.Duration
	find   time.Duration
	remove time.Duration
	drain  time.Duration
	height int
}

// result - totals across all workers; durations are the slowest worker
type result struct {
	size     int
	workers  int
	inserted counter.Counter // new nodes created
	found    counter.Counter
	removed  counter.Counter
	drained  counter.Counter
	slowest  phases
	bound    float64
}

// worst case AVL height for n nodes
func heightBound(n int) float64 {
	return 1.44*math.Log2(float64(n+2)) - 0.328
}

// run all workers to completion and return the first error
func (w workload) run(log *logger.L) (*result, error) {
	if w.size <= 0 {
		return nil, fault.ErrInvalidSize
	}
	if w.workers <= 0 {
		return nil, fault.ErrInvalidWorkers
	}

	r := &result{
		size:    w.size,
		workers: w.workers,
		bound:   heightBound(w.size),
	}

	timings := make([]phases, w.workers)
	errs := make([]error, w.workers)

	wg := sync.WaitGroup{}
	for i := 0; i < w.workers; i += 1 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			timings[worker], errs[worker] = w.worker(worker, r, log)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if nil != err {
			log.Errorf("worker: %d  error: %s", i, err)
			return nil, err
		}
	}

	for _, p := range timings {
		if p.insert > r.slowest.insert {
			r.slowest.insert = p.insert
		}
		if p.find > r.slowest.find {
			r.slowest.find = p.find
		}
		if p.remove > r.slowest.remove {
			r.slowest.remove = p.remove
		}
		if p.drain > r.slowest.drain {
			r.slowest.drain = p.drain
		}
		if p.height > r.slowest.height {
			r.slowest.height = p.height
		}
	}
	return r, nil
}

// build, query, shrink and drain one tree
func (w workload) worker(worker int, r *result, log *logger.L) (phases, error) {
	p := phases{}
	random := rand.New(rand.NewSource(w.seed + int64(worker)))

	keys := make([]intKey, w.size)
	for i := range keys {
		keys[i] = intKey(random.Int())
	}

	tree := avl.New()

	start := time.Now()
	created := uint64(0)
	for i, k := range keys {
		if tree.Insert(k, i) {
			created += 1
		}
	}
	p.insert = time.Since(start)
	p.height = tree.Height()
	r.inserted.Add(created)

	if float64(p.height) > heightBound(tree.Count()) {
		log.Criticalf("worker: %d  height: %d exceeds bound for: %d nodes", worker, p.height, tree.Count())
		return p, fault.ErrBalanceViolated
	}

	start = time.Now()
	for _, k := range keys {
		if _, ok := tree.Find(k); !ok {
			log.Errorf("worker: %d  key: %d not found", worker, k)
			return p, fault.ErrKeyNotFound
		}
	}
	p.find = time.Since(start)
	r.found.Add(uint64(len(keys)))

	toRemove := keys[:int(float64(len(keys))*w.removeFraction)]
	start = time.Now()
	removed := uint64(0)
	for _, k := range toRemove {
		if _, ok := tree.Delete(k); ok {
			removed += 1
		}
	}
	p.remove = time.Since(start)
	r.removed.Add(removed)

	if uint64(tree.Count()) != created-removed {
		log.Errorf("worker: %d  count: %d  expected: %d", worker, tree.Count(), created-removed)
		return p, fault.ErrCountInconsistent
	}
	for _, k := range toRemove {
		if tree.Contains(k) {
			log.Errorf("worker: %d  key: %d still present", worker, k)
			return p, fault.ErrKeyNotRemoved
		}
	}

	if w.check {
		if err := tree.Check(); nil != err {
			log.Criticalf("worker: %d  check failed: %s", worker, err)
			return p, err
		}
		log.Debugf("worker: %d  check passed for: %d nodes", worker, tree.Count())
	}

	// empty the tree from the low end
	start = time.Now()
	drained := uint64(0)
	previous := avl.Item(nil)
	for {
		key, _, ok := tree.DeleteMin()
		if !ok {
			break
		}
		if nil != previous && previous.Compare(key) >= 0 {
			log.Criticalf("worker: %d  drain out of order at: %v", worker, key)
			return p, fault.ErrOrderViolated
		}
		previous = key
		drained += 1
	}
	p.drain = time.Since(start)
	r.drained.Add(drained)

	if !tree.IsEmpty() {
		return p, fault.ErrTreeNotEmpty
	}

	log.Debugf("worker: %d  size: %d  height: %d  insert: %s  find: %s  remove: %s  drain: %s",
		worker, w.size, p.height, p.insert, p.find, p.remove, p.drain)
	return p, nil
}
