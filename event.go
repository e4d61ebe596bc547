package segint

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// eventSet accumulates the segment indices relevant to one event point:
// segments starting there, segments ending there, and segments already known
// to cross there (interior crossings discovered earlier in the sweep).
type eventSet struct {
	starting     map[int]struct{}
	ending       map[int]struct{}
	intersecting map[int]struct{}
}

func newEventSet() *eventSet {
	return &eventSet{
		starting:     map[int]struct{}{},
		ending:       map[int]struct{}{},
		intersecting: map[int]struct{}{},
	}
}

// compareEventPoints orders event points by increasing y, then increasing x
// — the sweep direction used throughout this package.
func compareEventPoints(a, b interface{}) int {
	return compareYX(a.(Vector), b.(Vector))
}

// eventQueue is a sorted map keyed by event point, using the same red-black
// tree the sweep status uses. Two event points are identified, and their
// segment sets merged, when their coordinates are ULP-equal: rather than
// require exact key equality, lookups probe the tree's floor and ceiling of
// the requested point and reuse either if it is within tolerance.
type eventQueue struct {
	tree    *rbt.Tree
	epsilon float64
}

func newEventQueue(epsilon float64) *eventQueue {
	return &eventQueue{tree: rbt.NewWith(compareEventPoints), epsilon: epsilon}
}

func (q *eventQueue) Len() int {
	return q.tree.Size()
}

// canonicalKey returns the existing key within tolerance of p, if any.
func (q *eventQueue) canonicalKey(p Vector) (Vector, bool) {
	if node, found := q.tree.Ceiling(p); found {
		if k := node.Key.(Vector); pointsEqual(k, p, q.epsilon) {
			return k, true
		}
	}
	if node, found := q.tree.Floor(p); found {
		if k := node.Key.(Vector); pointsEqual(k, p, q.epsilon) {
			return k, true
		}
	}
	return Vector{}, false
}

// entry returns the eventSet for p, merging into an existing tolerance-equal
// entry rather than creating a duplicate.
func (q *eventQueue) entry(p Vector) *eventSet {
	if k, ok := q.canonicalKey(p); ok {
		v, _ := q.tree.Get(k)
		return v.(*eventSet)
	}
	es := newEventSet()
	q.tree.Put(p, es)
	return es
}

func (q *eventQueue) addStarting(p Vector, index int) {
	q.entry(p).starting[index] = struct{}{}
}

func (q *eventQueue) addEnding(p Vector, index int) {
	q.entry(p).ending[index] = struct{}{}
}

func (q *eventQueue) addIntersecting(p Vector, index int) {
	q.entry(p).intersecting[index] = struct{}{}
}

// popMin removes and returns the lowest-ordered event point still queued.
func (q *eventQueue) popMin() (Vector, *eventSet, bool) {
	node := q.tree.Left()
	if node == nil {
		return Vector{}, nil, false
	}
	p := node.Key.(Vector)
	es := node.Value.(*eventSet)
	q.tree.Remove(p)
	return p, es, true
}
