// Package resources keeps bounded integer pools (scores, lives) and applies
// queued transactions to them once per step.
package resources

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrPoolNotFound is returned when a transaction names a pool that was
	// never added.
	ErrPoolNotFound = errors.New("resources: pool not found")
	// ErrTooBig is returned when a change would push a pool above its max.
	ErrTooBig = errors.New("resources: value above pool maximum")
	// ErrTooSmall is returned when a change would push a pool below its min.
	ErrTooSmall = errors.New("resources: value below pool minimum")
)

// Pool is one bounded value. Min and Max are inclusive.
type Pool struct {
	Value int
	Min   int
	Max   int
}

// Op is one step of a transaction.
type Op[K cmp.Ordered] interface {
	pool() K
	next(current int) int
}

// Change adds Amount to a pool.
type Change[K cmp.Ordered] struct {
	Pool   K
	Amount int
}

// Set overwrites a pool's value.
type Set[K cmp.Ordered] struct {
	Pool  K
	Value int
}

func (c Change[K]) pool() K          { return c.Pool }
func (c Change[K]) next(cur int) int { return cur + c.Amount }
func (s Set[K]) pool() K             { return s.Pool }
func (s Set[K]) next(_ int) int      { return s.Value }

// Result is the outcome of one transaction. On success Pools lists the pools
// it touched in order. On failure Err wraps one of the package errors and
// Failed names the pool that caused it.
type Result[K cmp.Ordered] struct {
	Pools  []K
	Failed K
	Err    error
}

// OK reports whether the transaction was applied.
func (r Result[K]) OK() bool {
	return r.Err == nil
}

// Queued holds pools and the transactions waiting for the next Update.
type Queued[K cmp.Ordered] struct {
	pools     map[K]*Pool
	pending   [][]Op[K]
	completed []Result[K]
}

// NewQueued creates an empty pool set.
func NewQueued[K cmp.Ordered]() *Queued[K] {
	return &Queued[K]{pools: make(map[K]*Pool)}
}

// AddPool creates or replaces pool k.
func (q *Queued[K]) AddPool(k K, value, min, max int) {
	q.pools[k] = &Pool{Value: value, Min: min, Max: max}
}

// Value returns the current value of pool k.
func (q *Queued[K]) Value(k K) (int, bool) {
	p, ok := q.pools[k]
	if !ok {
		return 0, false
	}
	return p.Value, true
}

// Pools returns the pool keys in ascending order.
func (q *Queued[K]) Pools() []K {
	return slices.Sorted(maps.Keys(q.pools))
}

// Queue schedules a transaction for the next Update. The ops are applied
// together or not at all.
func (q *Queued[K]) Queue(ops ...Op[K]) {
	if len(ops) == 0 {
		return
	}
	q.pending = append(q.pending, ops)
}

// Pending returns the number of transactions waiting for Update.
func (q *Queued[K]) Pending() int {
	return len(q.pending)
}

// Update applies queued transactions in the order they were queued. A
// transaction that fails any bounds check leaves every pool it touched as it
// was, and later transactions still run.
func (q *Queued[K]) Update() {
	q.completed = q.completed[:0]
	for _, tx := range q.pending {
		q.completed = append(q.completed, q.apply(tx))
	}
	q.pending = q.pending[:0]
}

func (q *Queued[K]) apply(tx []Op[K]) Result[K] {
	snapshot := make(map[K]int, len(tx))
	rollback := func() {
		for k, v := range snapshot {
			q.pools[k].Value = v
		}
	}

	touched := make([]K, 0, len(tx))
	for _, op := range tx {
		k := op.pool()
		p, ok := q.pools[k]
		if !ok {
			rollback()
			return Result[K]{Failed: k, Err: fmt.Errorf("pool %v: %w", k, ErrPoolNotFound)}
		}
		if _, seen := snapshot[k]; !seen {
			snapshot[k] = p.Value
		}

		v := op.next(p.Value)
		switch {
		case v > p.Max:
			rollback()
			return Result[K]{Failed: k, Err: fmt.Errorf("pool %v: %d > %d: %w", k, v, p.Max, ErrTooBig)}
		case v < p.Min:
			rollback()
			return Result[K]{Failed: k, Err: fmt.Errorf("pool %v: %d < %d: %w", k, v, p.Min, ErrTooSmall)}
		}
		p.Value = v
		touched = append(touched, k)
	}
	return Result[K]{Pools: touched}
}

// Completed returns the results of the last Update, one per transaction.
func (q *Queued[K]) Completed() []Result[K] {
	return slices.Clone(q.completed)
}
