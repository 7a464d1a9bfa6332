package festival

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseClock parses a 24-hour "HH:MM" wall-clock string into minutes since
// midnight. There is no timezone and no day rollover.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// HasConflict reports whether slot overlaps another must-see slot on a
// different stage of the same day. Slots not marked must-see never conflict,
// and two must-see acts on the same stage are sequential on that stage's
// timeline, so only cross-stage overlaps are signalled. Intervals are
// half-open: touching endpoints do not overlap.
//
// The scan is O(n) and recomputed from scratch on every query so the result
// can never be stale after a priority edit.
func HasConflict(slot ArtistSlot, daySlots []ArtistSlot) bool {
	if slot.Priority != PriorityMust {
		return false
	}
	start, err := ParseClock(slot.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(slot.EndTime)
	if err != nil {
		return false
	}
	for _, other := range daySlots {
		if other.Priority != PriorityMust || other.ID == slot.ID || other.StageID == slot.StageID {
			continue
		}
		otherStart, err := ParseClock(other.StartTime)
		if err != nil {
			continue
		}
		otherEnd, err := ParseClock(other.EndTime)
		if err != nil {
			continue
		}
		if start < otherEnd && end > otherStart {
			return true
		}
	}
	return false
}

// ByStage returns the given day's slots on one stage, sorted ascending by
// start time. The sort is stable: slots with equal start times keep their
// input order. Slots whose start time does not parse sort last.
func ByStage(daySlots []ArtistSlot, stageID string) []ArtistSlot {
	slots := make([]ArtistSlot, 0, len(daySlots))
	for _, a := range daySlots {
		if a.StageID == stageID {
			slots = append(slots, a)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		si, errI := ParseClock(slots[i].StartTime)
		sj, errJ := ParseClock(slots[j].StartTime)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return si < sj
	})
	return slots
}

// Summary holds the per-day priority counts.
type Summary struct {
	MustCount  int
	MaybeCount int
	SkipCount  int
	Total      int
}

// Summarize counts the day's slots per priority tier.
func Summarize(daySlots []ArtistSlot) Summary {
	summary := Summary{Total: len(daySlots)}
	for _, a := range daySlots {
		switch a.Priority {
		case PriorityMust:
			summary.MustCount++
		case PriorityMaybe:
			summary.MaybeCount++
		case PrioritySkip:
			summary.SkipCount++
		}
	}
	return summary
}

// DayTimeBounds returns the earliest parsed start time and the latest parsed
// end time across the day's slots, in minutes since midnight. ok is false
// when the day has no slots with parseable times; callers must guard before
// sizing a timeline grid.
func DayTimeBounds(daySlots []ArtistSlot) (minStart, maxEnd int, ok bool) {
	for _, a := range daySlots {
		start, errStart := ParseClock(a.StartTime)
		end, errEnd := ParseClock(a.EndTime)
		if errStart != nil || errEnd != nil {
			continue
		}
		if !ok || start < minStart {
			minStart = start
		}
		if !ok || end > maxEnd {
			maxEnd = end
		}
		ok = true
	}
	return minStart, maxEnd, ok
}
