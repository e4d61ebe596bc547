package segint

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// statusEntry is one segment tracked by the sweep status, addressed by its
// stable input index. The entry pointer is the tree key; the tree locates it
// through sweepComparator, whose final tie-break on index keeps distinct
// entries distinct.
type statusEntry struct {
	index int
	seg   Segment
}

// sweepComparator provides the dynamic comparison logic for the status tree.
// The vertical ordering of segments crossing the sweep line depends on their
// x-coordinate at the sweep's current y; this struct holds that `currentY`
// state so the comparator stays correct across event points.
type sweepComparator struct {
	currentY float64
	epsilon  float64
}

// Compare implements github.com/emirpasic/gods/utils.Comparator. It orders
// two status entries by their x-coordinate at the comparator's currentY,
// breaking ties first by slope (so near-parallel and collinear segments stay
// ordered consistently) and finally by input index for a total order.
func (c *sweepComparator) Compare(a, b interface{}) int {
	ea := a.(*statusEntry)
	eb := b.(*statusEntry)

	xa := segmentXAtY(ea.seg, c.currentY, c.epsilon)
	xb := segmentXAtY(eb.seg, c.currentY, c.epsilon)
	if !floatsEqual(xa, xb, c.epsilon) {
		if xa < xb {
			return -1
		}
		return 1
	}

	slopeA := slopeXY(ea.seg, c.epsilon)
	slopeB := slopeXY(eb.seg, c.epsilon)
	if slopeA != slopeB {
		if slopeA < slopeB {
			return -1
		}
		return 1
	}

	if ea.index != eb.index {
		if ea.index < eb.index {
			return -1
		}
		return 1
	}
	return 0
}

// status is the sweep-line status structure: the set of segments currently
// crossing the sweep line, ordered by their x-coordinate at the current
// sweep y. It wraps a red-black tree for O(log n) insert, remove, and
// neighbor-finding, ordered by a comparator that tracks the sweep's current
// y position rather than a fixed key.
type status struct {
	tree       *rbt.Tree
	comparator *sweepComparator
	entries    map[int]*statusEntry
}

func newStatus(epsilon float64) *status {
	comp := &sweepComparator{epsilon: epsilon}
	return &status{
		tree:       rbt.NewWith(comp.Compare),
		comparator: comp,
		entries:    map[int]*statusEntry{},
	}
}

// setY updates the sweep's current y. This MUST be called before any tree
// operation at a new event point so segments compare correctly; insertion
// and neighbor queries are never interleaved with a comparator change.
func (s *status) setY(y float64) { s.comparator.currentY = y }

// insert adds segment index into the status.
func (s *status) insert(index int, seg Segment) {
	e := &statusEntry{index: index, seg: seg}
	s.entries[index] = e
	s.tree.Put(e, true)
}

// remove deletes segment index from the status, if present.
func (s *status) remove(index int) {
	e, ok := s.entries[index]
	if !ok {
		return
	}
	s.tree.Remove(e)
	delete(s.entries, index)
}

// findSuccessor finds the in-order successor of a node in the tree (the next
// largest element).
func findSuccessor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		curr := node.Right
		for curr.Left != nil {
			curr = curr.Left
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Right {
		curr = p
		p = p.Parent
	}
	return p
}

// findPredecessor finds the in-order predecessor of a node in the tree (the
// next smallest element).
func findPredecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		curr := node.Left
		for curr.Right != nil {
			curr = curr.Right
		}
		return curr
	}
	p := node.Parent
	curr := node
	for p != nil && curr == p.Left {
		curr = p
		p = p.Parent
	}
	return p
}

// neighbors returns the segments immediately below and above the given
// (already-inserted) index in the status.
func (s *status) neighbors(index int) (below, above *statusEntry) {
	e, ok := s.entries[index]
	if !ok {
		return nil, nil
	}
	node := s.tree.GetNode(e)
	if node == nil {
		return nil, nil
	}
	if predNode := findPredecessor(node); predNode != nil {
		below = predNode.Key.(*statusEntry)
	}
	if succNode := findSuccessor(node); succNode != nil {
		above = succNode.Key.(*statusEntry)
	}
	return below, above
}

// neighborsAt returns the status entries immediately below and above the
// given point's x position, without requiring any segment to be present
// there — used when an event introduces no new status members and the
// event's pre-existing neighbors must be tested against each other.
func (s *status) neighborsAt(point Vector) (below, above *statusEntry) {
	probe := &statusEntry{index: -1, seg: Segment{P1: point, P2: point}}
	if node, found := s.tree.Floor(probe); found {
		below = node.Key.(*statusEntry)
	}
	if node, found := s.tree.Ceiling(probe); found {
		above = node.Key.(*statusEntry)
	}
	return below, above
}
