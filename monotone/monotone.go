// Package monotone implements the classical two-chain stack triangulation of a
// y-monotone polygon (C5), the final step of the face-triangulation pipeline: by the time a
// polygon reaches this package, the sweep-line decomposer (package sweep) has already
// proven it is y-monotone and handed it over as two chains.
package monotone

import "github.com/go-trigon/trigon/point"

// Chain identifies which of a y-monotone polygon's two boundary chains a vertex belongs
// to, as seen walking the polygon top to bottom.
type Chain uint8

const (
	// Left marks a vertex on the chain that bounds the polygon on its left.
	Left Chain = iota
	// Right marks a vertex on the chain that bounds the polygon on its right.
	Right
)

func (c Chain) String() string {
	switch c {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("monotone: invalid Chain value")
	}
}

// Polygon is a y-monotone polygon under construction or complete: Top is its topmost
// vertex, Left and Right are its two boundary chains in top-to-bottom order (excluding
// Top), and Bottom is set once the sweep has closed the polygon off. A [Polygon] with a
// nil Bottom is still open and must not be triangulated.
type Polygon struct {
	Top    point.Point
	Left   []point.Point
	Right  []point.Point
	Bottom *point.Point
}

// chainVertex pairs a Point with the Chain it belongs to, for the merged top-to-bottom
// walk Triangulate performs.
type chainVertex struct {
	p     point.Point
	chain Chain
}

// merge produces the single descending-order vertex list Triangulate walks: Top first,
// then every Left and Right vertex interleaved by descending Point order, then Bottom
// last. Top and Bottom are not tagged with a meaningful Chain since the algorithm only
// ever tests interior vertices against the chain of the stack's top entry.
func (poly *Polygon) merge() []chainVertex {
	if poly.Bottom == nil {
		panic("monotone: Triangulate called on an unfinished Polygon (Bottom is nil)")
	}

	vertices := make([]chainVertex, 0, len(poly.Left)+len(poly.Right)+2)
	vertices = append(vertices, chainVertex{p: poly.Top})

	i, j := 0, 0
	for i < len(poly.Left) && j < len(poly.Right) {
		if poly.Right[j].Less(poly.Left[i]) {
			vertices = append(vertices, chainVertex{p: poly.Left[i], chain: Left})
			i++
		} else {
			vertices = append(vertices, chainVertex{p: poly.Right[j], chain: Right})
			j++
		}
	}
	for ; i < len(poly.Left); i++ {
		vertices = append(vertices, chainVertex{p: poly.Left[i], chain: Left})
	}
	for ; j < len(poly.Right); j++ {
		vertices = append(vertices, chainVertex{p: poly.Right[j], chain: Right})
	}

	vertices = append(vertices, chainVertex{p: *poly.Bottom})
	return vertices
}
