package route

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for routing and validation.
var (
	// ErrNilMap indicates a nil *core.StreetMap was passed.
	ErrNilMap = errors.New("route: street map is nil")

	// ErrEmptyPath indicates an empty node sequence was passed to TravelTime.
	ErrEmptyPath = errors.New("route: path must list at least one node")

	// ErrBadMaxDuration indicates a negative MaxDuration option value.
	ErrBadMaxDuration = errors.New("route: MaxDuration must be non-negative")
)

// Reason classifies the first offending condition found in a path.
// The order of the constants mirrors the order of the validation passes.
type Reason int

const (
	// ReasonMissingNode — an identifier is out of range or unregistered.
	ReasonMissingNode Reason = iota

	// ReasonDuplicateNode — an identifier appears more than once.
	ReasonDuplicateNode

	// ReasonNoRoad — no way contains both nodes of an adjacent pair.
	ReasonNoRoad

	// ReasonNotDirect — the pair shares a way but never at consecutive
	// positions.
	ReasonNotDirect

	// ReasonWrongDirection — the pair is adjacent only against a one-way
	// way's direction.
	ReasonWrongDirection
)

// PathError reports why a node sequence is not a legal path. From is the
// offending node for the single-node reasons; From/To name the offending
// adjacent pair for the pairwise reasons.
type PathError struct {
	Reason Reason
	From   int
	To     int
}

// Message renders the failure as presentation-ready text, unprefixed and
// unterminated; output layers add their own framing around it.
func (e *PathError) Message() string {
	switch e.Reason {
	case ReasonMissingNode:
		return fmt.Sprintf("node %d does not exist", e.From)
	case ReasonDuplicateNode:
		return fmt.Sprintf("node %d appeared more than once", e.From)
	case ReasonNoRoad:
		return fmt.Sprintf("there are no roads between node %d and node %d", e.From, e.To)
	case ReasonNotDirect:
		return fmt.Sprintf("cannot go directly from node %d to node %d", e.From, e.To)
	case ReasonWrongDirection:
		return fmt.Sprintf("cannot go in reverse from node %d to node %d", e.From, e.To)
	default:
		return fmt.Sprintf("invalid path near node %d", e.From)
	}
}

// Error renders the failure in the package's error register.
func (e *PathError) Error() string {
	return "route: " + e.Message()
}

// Options configures ShortestPath.
//
// MaxDuration caps exploration: nodes whose tentative cost exceeds the cap
// (in minutes) are never settled. Default is +Inf (no cap).
type Options struct {
	MaxDuration float64
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// DefaultOptions returns the router defaults: no duration cap.
func DefaultOptions() Options {
	return Options{MaxDuration: math.Inf(1)}
}

// WithMaxDuration caps exploration at the given number of minutes.
// Negative values are an invalid configuration and panic.
func WithMaxDuration(minutes float64) Option {
	if minutes < 0 {
		panic(ErrBadMaxDuration.Error())
	}

	return func(o *Options) {
		o.MaxDuration = minutes
	}
}
