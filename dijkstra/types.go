package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for a vertex with no path from the source.
const Unreachable int64 = math.MaxInt64

// NoPredecessor marks the source and unreachable vertices in the prev slice.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a vertex index outside [0, V).
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge length was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a single Dijkstra run.
//
// Source           – starting vertex index.
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – cap on explored distances. Must be ≥ 0. Default Unreachable (no cap).
// InfEdgeThreshold – edges with length ≥ this value are skipped. Must be > 0.
//
//	Default math.MaxInt64 (no obstacles).
type Options struct {
	Source           int   // index of the source vertex
	ReturnPath       bool  // whether to return the predecessor slice
	MaxDistance      int64 // maximum distance to explore
	InfEdgeThreshold int64 // length threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. A negative value is
// reported by Dijkstra as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines the length at which an edge is treated as
// closed. A non-positive value is reported by Dijkstra as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with source 0, no path, no distance cap and
// no impassable edges.
func DefaultOptions() Options {
	return Options{
		Source:           0,
		ReturnPath:       false,
		MaxDistance:      Unreachable,
		InfEdgeThreshold: math.MaxInt64,
	}
}
