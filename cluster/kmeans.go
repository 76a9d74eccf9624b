// Package cluster implements k-means clustering of two-dimensional points.
//
// The algorithm is deterministic: the first k input points seed the centers
// and the iteration count is a fixed budget rather than a convergence test.
package cluster

import (
	"errors"
	"fmt"
)

// DefaultMaxIterations is the iteration budget used when none is given.
const DefaultMaxIterations = 20

// Errors returned by KMeans.
var (
	// ErrInvalidK is returned when k is not in [1, len(points)].
	ErrInvalidK = errors.New("cluster: k out of range")

	// ErrInvalidIterations is returned for a negative iteration budget.
	ErrInvalidIterations = errors.New("cluster: negative iteration count")
)

// Point is a coordinate pair.
type Point struct {
	X, Y float64
}

// Result holds the outcome of KMeans.
type Result struct {
	// Centers has one entry per cluster, in seed order.
	Centers []Point
	// Clusters[i] lists the points assigned to Centers[i] in input order.
	// It is nil for a center that attracted no points.
	Clusters [][]Point
}

// Option configures KMeans.
type Option func(*options)

type options struct {
	maxIterations int
}

// WithMaxIterations sets the number of full assign-and-update rounds.
// Zero runs only the final assignment pass.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// KMeans partitions points into k clusters.
//
// Centers start at points[0:k]. Each round assigns every point to the nearest
// center by squared Euclidean distance (the lowest index wins ties) and moves
// each center to the mean of its points. A center that received no points is
// reset to points[i]. After the budgeted rounds, one more round is run which
// also records the members of every cluster.
func KMeans(points []Point, k int, opts ...Option) (*Result, error) {
	o := options{maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}
	if k <= 0 || k > len(points) {
		return nil, fmt.Errorf("%w: k=%d with %d points", ErrInvalidK, k, len(points))
	}
	if o.maxIterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, o.maxIterations)
	}

	centers := make([]Point, k)
	copy(centers, points[:k])

	s := newState(k)
	for range o.maxIterations {
		s.assign(points, centers, nil)
		s.update(points, centers)
	}

	clusters := make([][]Point, k)
	s.assign(points, centers, clusters)
	s.update(points, centers)

	return &Result{Centers: centers, Clusters: clusters}, nil
}

// state holds per-round accumulators, reused across rounds.
type state struct {
	sums   []Point
	counts []int
}

func newState(k int) *state {
	return &state{
		sums:   make([]Point, k),
		counts: make([]int, k),
	}
}

// assign accumulates every point into its nearest center. When clusters is
// non-nil the point is also appended to its cluster.
func (s *state) assign(points, centers []Point, clusters [][]Point) {
	clear(s.sums)
	clear(s.counts)

	for _, p := range points {
		best := 0
		bestDist := distance2(p, centers[0])
		for i := 1; i < len(centers); i++ {
			if d := distance2(p, centers[i]); d < bestDist {
				best, bestDist = i, d
			}
		}

		s.sums[best].X += p.X
		s.sums[best].Y += p.Y
		s.counts[best]++
		if clusters != nil {
			clusters[best] = append(clusters[best], p)
		}
	}
}

// update moves each center to the mean of its assigned points.
func (s *state) update(points, centers []Point) {
	for i := range centers {
		if s.counts[i] == 0 {
			centers[i] = points[i]
			continue
		}
		n := float64(s.counts[i])
		centers[i] = Point{X: s.sums[i].X / n, Y: s.sums[i].Y / n}
	}
}

func distance2(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
