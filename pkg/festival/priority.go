package festival

import "fmt"

// Priority is the attendance tier of an artist slot.
type Priority string

const (
	PriorityMaybe Priority = "maybe"
	PriorityMust  Priority = "must"
	PrioritySkip  Priority = "skip"
)

// priorityCycle is the fixed tap-to-cycle order: maybe -> must -> skip -> maybe.
var priorityCycle = [3]Priority{PriorityMaybe, PriorityMust, PrioritySkip}

// Next returns the next priority in the cycle. There is no transition guard:
// any state moves forward regardless of conflicts.
func (p Priority) Next() Priority {
	for i, candidate := range priorityCycle {
		if candidate == p {
			return priorityCycle[(i+1)%len(priorityCycle)]
		}
	}
	// Unknown values only occur on unvalidated input; restart the cycle.
	return PriorityMaybe
}

// ParsePriority converts a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityMaybe, PriorityMust, PrioritySkip:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}
