package festival

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "afternoon", input: "14:30", want: 870},
		{name: "last minute of the day", input: "23:59", want: 1439},
		{name: "missing separator", input: "1430", wantErr: true},
		{name: "non-numeric hours", input: "xx:30", wantErr: true},
		{name: "non-numeric minutes", input: "14:yy", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "14:60", wantErr: true},
		{name: "negative hour", input: "-1:30", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func mustSlot(id, stageID, start, end string) ArtistSlot {
	return ArtistSlot{ID: id, ArtistName: "Artist " + id, StageID: stageID, StartTime: start, EndTime: end, Priority: PriorityMust, DayID: "day-1"}
}

func TestHasConflict(t *testing.T) {
	t.Run("overlapping must-see slots on different stages conflict both ways", func(t *testing.T) {
		a := mustSlot("a", "main", "14:00", "15:00")
		b := mustSlot("b", "grove", "14:30", "15:30")
		day := []ArtistSlot{a, b}

		assert.True(t, HasConflict(a, day))
		assert.True(t, HasConflict(b, day))
	})

	t.Run("same stage is never a conflict regardless of overlap", func(t *testing.T) {
		a := mustSlot("a", "main", "14:00", "15:00")
		b := mustSlot("b", "main", "14:00", "15:00")
		day := []ArtistSlot{a, b}

		assert.False(t, HasConflict(a, day))
		assert.False(t, HasConflict(b, day))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		a := mustSlot("a", "main", "14:00", "15:00")
		b := mustSlot("b", "grove", "15:00", "16:00")
		day := []ArtistSlot{a, b}

		assert.False(t, HasConflict(a, day))
		assert.False(t, HasConflict(b, day))
	})

	t.Run("non-must slots never conflict even when fully overlapped", func(t *testing.T) {
		a := mustSlot("a", "main", "14:00", "15:00")
		a.Priority = PriorityMaybe
		b := mustSlot("b", "grove", "14:00", "15:00")
		day := []ArtistSlot{a, b}

		assert.False(t, HasConflict(a, day))

		a.Priority = PrioritySkip
		assert.False(t, HasConflict(a, []ArtistSlot{a, b}))
	})

	t.Run("only must-see candidates are considered", func(t *testing.T) {
		a := mustSlot("a", "main", "14:00", "15:00")
		b := mustSlot("b", "grove", "14:00", "15:00")
		b.Priority = PriorityMaybe
		day := []ArtistSlot{a, b}

		assert.False(t, HasConflict(a, day))
	})

	t.Run("slot alone on the day never conflicts", func(t *testing.T) {
		a := mustSlot("a", "main", "14:00", "15:00")
		assert.False(t, HasConflict(a, []ArtistSlot{a}))
	})

	t.Run("malformed times suppress conflicts instead of panicking", func(t *testing.T) {
		a := mustSlot("a", "main", "bogus", "15:00")
		b := mustSlot("b", "grove", "14:00", "15:00")
		day := []ArtistSlot{a, b}

		assert.False(t, HasConflict(a, day))
		assert.False(t, HasConflict(b, day))
	})

	// The worked scenario: A and B overlap cross-stage, C shares A's stage.
	t.Run("main and grove lineup scenario", func(t *testing.T) {
		a := mustSlot("a", "main", "14:00", "15:00")
		b := mustSlot("b", "grove", "14:30", "15:30")
		c := mustSlot("c", "main", "14:15", "14:45")
		day := []ArtistSlot{a, b, c}

		assert.True(t, HasConflict(a, day))
		assert.True(t, HasConflict(b, day))
		assert.False(t, HasConflict(c, day), "c overlaps only a, which shares its stage")
	})
}

func TestByStage(t *testing.T) {
	t.Run("filters to the stage and sorts by start time", func(t *testing.T) {
		day := []ArtistSlot{
			mustSlot("late", "main", "20:00", "21:00"),
			mustSlot("other", "grove", "12:00", "13:00"),
			mustSlot("early", "main", "12:00", "13:00"),
			mustSlot("mid", "main", "15:00", "16:00"),
		}

		got := ByStage(day, "main")
		assert.Len(t, got, 3)
		assert.Equal(t, "early", got[0].ID)
		assert.Equal(t, "mid", got[1].ID)
		assert.Equal(t, "late", got[2].ID)
	})

	t.Run("equal start times preserve input order", func(t *testing.T) {
		day := []ArtistSlot{
			mustSlot("first", "main", "14:00", "15:00"),
			mustSlot("second", "main", "14:00", "14:30"),
		}

		got := ByStage(day, "main")
		assert.Equal(t, "first", got[0].ID)
		assert.Equal(t, "second", got[1].ID)
	})

	t.Run("unknown stage yields an empty sequence", func(t *testing.T) {
		day := []ArtistSlot{mustSlot("a", "main", "14:00", "15:00")}
		assert.Empty(t, ByStage(day, "nowhere"))
	})
}

func TestSummarize(t *testing.T) {
	day := []ArtistSlot{
		{ID: "1", Priority: PriorityMust},
		{ID: "2", Priority: PriorityMust},
		{ID: "3", Priority: PriorityMaybe},
		{ID: "4", Priority: PrioritySkip},
		{ID: "5", Priority: PrioritySkip},
		{ID: "6", Priority: PrioritySkip},
	}

	summary := Summarize(day)
	assert.Equal(t, 2, summary.MustCount)
	assert.Equal(t, 1, summary.MaybeCount)
	assert.Equal(t, 3, summary.SkipCount)
	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, summary.Total, summary.MustCount+summary.MaybeCount+summary.SkipCount)
}

func TestDayTimeBounds(t *testing.T) {
	t.Run("min start and max end across the day", func(t *testing.T) {
		day := []ArtistSlot{
			mustSlot("a", "main", "14:00", "15:00"),
			mustSlot("b", "grove", "12:30", "13:30"),
			mustSlot("c", "main", "20:00", "23:30"),
		}

		minStart, maxEnd, ok := DayTimeBounds(day)
		assert.True(t, ok)
		assert.Equal(t, 12*60+30, minStart)
		assert.Equal(t, 23*60+30, maxEnd)
	})

	t.Run("empty day reports not ok", func(t *testing.T) {
		_, _, ok := DayTimeBounds(nil)
		assert.False(t, ok)
	})

	t.Run("day with only malformed times reports not ok", func(t *testing.T) {
		_, _, ok := DayTimeBounds([]ArtistSlot{mustSlot("a", "main", "junk", "junk")})
		assert.False(t, ok)
	})
}
