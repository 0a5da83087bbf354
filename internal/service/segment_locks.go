package service

import (
	"sort"
	"sync"
)

// segmentLocks serializes check-and-commit sections per track segment id.
// Two trip creations touching disjoint segments proceed in parallel; two
// touching the same segment cannot both pass the conflict check and then
// both commit. Locks are taken in ascending id order so overlapping sets
// cannot deadlock.
type segmentLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newSegmentLocks() *segmentLocks {
	return &segmentLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *segmentLocks) get(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// lockAll locks the deduplicated ids in ascending order and returns a
// function that releases them in reverse order
func (l *segmentLocks) lockAll(ids []int64) func() {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	held := make([]*sync.Mutex, 0, len(unique))
	for _, id := range unique {
		m := l.get(id)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
