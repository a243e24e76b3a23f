package monotone

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/go-trigon/trigon/point"
	"github.com/go-trigon/trigon/types"
)

// Triangulate covers the interior of a finished y-monotone [Polygon] with a
// [point.PointTriangle] list, using the classical two-chain stack algorithm: walk the
// merged, descending-order vertex list maintaining a stack of "unresolved" vertices whose
// diagonals to later points have not yet been decided; whenever a vertex falls on the
// opposite chain from the stack's top, every stack entry can be triangulated against it in
// one fan; whenever it falls on the same chain, only the prefix of the stack still forming
// a valid (non-reflex, from the polygon's interior side) ear can be resolved.
//
// The stack is an [github.com/emirpasic/gods/stacks/arraystack] rather than a bare slice:
// the algorithm is naturally expressed as push/pop/peek, and the gods container reads the
// way the textbook two-stack pseudocode is usually written.
func Triangulate(poly *Polygon) []point.PointTriangle {
	vertices := poly.merge()
	n := len(vertices)
	if n < 3 {
		return nil
	}

	var triangles []point.PointTriangle

	stack := arraystack.New()
	stack.Push(vertices[0])
	stack.Push(vertices[1])

	emitFan := func(p chainVertex) {
		var popped []chainVertex
		for stack.Size() > 0 {
			v, _ := stack.Pop()
			popped = append(popped, v.(chainVertex))
		}
		for i := 0; i < len(popped)-1; i++ {
			triangles = append(triangles, point.NewPointTriangle(popped[i].p, popped[i+1].p, p.p))
		}
		stack.Push(popped[0])
		stack.Push(p)
	}

	emitSameChain := func(p chainVertex) {
		topVal, _ := stack.Pop()
		last := topVal.(chainVertex)

		for stack.Size() > 0 {
			nextVal, _ := stack.Peek()
			next := nextVal.(chainVertex)

			o := point.Orientation(next.p, last.p, p.p)
			var matches bool
			if p.chain == Left {
				matches = o == types.CounterClockwise || o == types.Collinear
			} else {
				matches = o == types.Clockwise
			}
			if !matches {
				break
			}

			triangles = append(triangles, point.NewPointTriangle(next.p, last.p, p.p))
			stack.Pop()
			last = next
		}

		stack.Push(last)
		stack.Push(p)
	}

	for k := 2; k < n-1; k++ {
		p := vertices[k]
		topVal, _ := stack.Peek()
		top := topVal.(chainVertex)

		if p.chain != top.chain {
			emitFan(p)
		} else {
			emitSameChain(p)
		}
	}

	// The bottom vertex always closes the polygon out with the opposite-side fan rule,
	// regardless of which chain it nominally belongs to.
	emitFan(vertices[n-1])

	return triangles
}
