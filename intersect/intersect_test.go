package intersect

import (
	"testing"

	"github.com/go-trigon/trigon/point"
	"github.com/go-trigon/trigon/types"
	"github.com/stretchr/testify/assert"
)

func TestOnSegmentIfCollinear(t *testing.T) {
	cases := []struct {
		name     string
		p, q, r  point.Point
		expected bool
	}{
		{"on_diagonal", point.New(0, 0), point.New(0.5, 0.5), point.New(1, 1), true},
		{"on_vertical", point.New(0, 0), point.New(0, 0.5), point.New(0, 1), true},
		{"on_horizontal", point.New(0, 0), point.New(0.5, 0), point.New(1, 0), true},
		{"off_diagonal", point.New(0, 0), point.New(1, 1), point.New(0.5, 0.5), false},
		{"off_vertical", point.New(0, 0), point.New(0, 1), point.New(0, 0.5), false},
		{"off_horizontal", point.New(0, 0), point.New(1, 0), point.New(0.5, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, OnSegmentIfCollinear(c.p, c.q, c.r))
		})
	}
}

func TestDoIntersectCrossing(t *testing.T) {
	s1 := point.NewSegment(point.New(0, 0), point.New(4, 4))
	s2 := point.NewSegment(point.New(0, 4), point.New(4, 0))
	assert.True(t, DoIntersect(s1, s2))
}

func TestDoIntersectDisjoint(t *testing.T) {
	s3 := point.NewSegment(point.New(0, 0), point.New(2, 2))
	s4 := point.NewSegment(point.New(3, 3), point.New(4, 4))
	assert.False(t, DoIntersect(s3, s4))
}

func TestShareEndpoint(t *testing.T) {
	s1 := point.NewSegment(point.New(0, 0), point.New(1, 1))
	s2 := point.NewSegment(point.New(1, 1), point.New(2, 2))
	assert.True(t, ShareEndpoint(s1, s2))

	s3 := point.NewSegment(point.New(0, 0), point.New(1, 1))
	s4 := point.NewSegment(point.New(2, 2), point.New(3, 3))
	assert.False(t, ShareEndpoint(s3, s4))
}

func TestFindIntersectionCrossing(t *testing.T) {
	s1 := point.NewSegment(point.New(0, 0), point.New(2, 2))
	s2 := point.NewSegment(point.New(0, 2), point.New(2, 0))
	got := FindIntersection(s1, s2)
	assert.Equal(t, types.PointIntersection, got.Kind)
	assert.Equal(t, []point.Point{point.New(1, 1)}, got.Points)
}

func TestFindIntersectionNonIntersecting(t *testing.T) {
	s3 := point.NewSegment(point.New(0, 0), point.New(1, 1))
	s4 := point.NewSegment(point.New(2, 2), point.New(3, 3))
	got := FindIntersection(s3, s4)
	assert.Equal(t, types.CollinearNoOverlap, got.Kind)
	assert.Empty(t, got.Points)
}

func TestFindIntersectionParallelNonCollinear(t *testing.T) {
	s1 := point.NewSegment(point.New(0, 0), point.New(2, 2))
	s2 := point.NewSegment(point.New(0, 1), point.New(2, 3))
	got := FindIntersection(s1, s2)
	assert.Equal(t, types.NoIntersection, got.Kind)
	assert.Empty(t, got.Points)
}

func TestFindIntersectionOverlapping(t *testing.T) {
	s5 := point.NewSegment(point.New(0, 0), point.New(2, 0))
	s6 := point.NewSegment(point.New(1, 0), point.New(3, 0))
	got := FindIntersection(s5, s6)
	assert.Equal(t, types.CollinearWithOverlap, got.Kind)
	assert.ElementsMatch(t, []point.Point{point.New(1, 0), point.New(2, 0)}, got.Points)
}

func TestFindIntersectionsCrossingDiagonals(t *testing.T) {
	segments := []point.Segment{
		point.NewSegment(point.New(0, 0), point.New(2, 2)),
		point.NewSegment(point.New(2, 0), point.New(0, 2)),
	}
	got := FindIntersections(segments)
	assert.Equal(t, map[OrderedPair]struct{}{NewOrderedPair(0, 1): {}}, got)
}

func TestFindIntersectionsIgnoresSharedEndpoints(t *testing.T) {
	segments := []point.Segment{
		point.NewSegment(point.New(0, 0), point.New(1, 1)),
		point.NewSegment(point.New(1, 1), point.New(2, 0)),
	}
	got := FindIntersections(segments)
	assert.Empty(t, got)
}
