package reservation

import "errors"

var ErrUnknownPolicy = errors.New("unknown availability policy")

// Policy decides when an existing reservation blocks a requested stay.
type Policy string

const (
	// PolicyContainment blocks when the existing reservation starts inside
	// the requested range, both ends inclusive. It ignores stays that began
	// before the range and are still running.
	PolicyContainment Policy = "containment"
	// PolicyOverlap blocks on any intersection of the half-open ranges.
	PolicyOverlap Policy = "overlap"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyContainment, PolicyOverlap:
		return Policy(s), nil
	case "":
		return PolicyContainment, nil
	default:
		return "", ErrUnknownPolicy
	}
}

func (p Policy) Conflicts(existing, requested Stay) bool {
	switch p {
	case PolicyOverlap:
		return existing.start.Before(requested.end) && existing.end.After(requested.start)
	default:
		return !existing.start.Before(requested.start) && !existing.start.After(requested.end)
	}
}

// FirstConflict returns the index of the first existing stay that blocks requested, or -1.
func (p Policy) FirstConflict(existing []Stay, requested Stay) int {
	for i, s := range existing {
		if p.Conflicts(s, requested) {
			return i
		}
	}
	return -1
}
