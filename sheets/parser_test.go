package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysoc/discord-bot/schedule"
)

// scheduleGrid builds a grid with the real worksheet geometry: five junk
// rows, the date header on row index 5, time rows below.
func scheduleGrid(dates []string, rows [][]string) [][]string {
	grid := make([][]string, 5)
	header := []string{"", ""}
	header = append(header, dates...)
	grid = append(grid, header)
	grid = append(grid, rows...)
	return grid
}

func TestParseScheduleHeaderParity(t *testing.T) {
	dates := []string{"9/15/2025", "9/16/2025", "9/17/2025", "9/18/2025", "9/19/2025", "9/20/2025", "9/21/2025"}
	grid := scheduleGrid(dates, [][]string{
		{"", "8:00 am", "BOOKED", "", "alice"},
		{"", "8:30 am", "", "BOOKED"},
	})

	sched := ParseSchedule(grid)
	require.Len(t, sched, 2)
	for timeLabel, days := range sched {
		assert.Len(t, days, len(dates), "time row %s must carry every header date", timeLabel)
		for _, date := range dates {
			assert.Contains(t, days, date)
		}
	}
}

func TestParseScheduleValues(t *testing.T) {
	dates := []string{"9/15/2025", "9/16/2025", "9/17/2025", "9/18/2025", "9/19/2025", "9/20/2025", "9/21/2025"}
	grid := scheduleGrid(dates, [][]string{
		{"", "8:00 am", "BOOKED", "", "study group"},
	})

	sched := ParseSchedule(grid)
	days := sched["8:00 am"]
	require.NotNil(t, days)
	assert.Equal(t, "BOOKED", days["9/15/2025"])
	// Empty cell defaults.
	assert.Equal(t, schedule.StatusNotBooked, days["9/16/2025"])
	// Occupant text is preserved verbatim.
	assert.Equal(t, "study group", days["9/17/2025"])
	// Cells past the end of a short row default too.
	assert.Equal(t, schedule.StatusNotBooked, days["9/21/2025"])
}

func TestParseScheduleStopsAtEmptyTimeLabel(t *testing.T) {
	dates := []string{"9/15/2025", "9/16/2025", "9/17/2025", "9/18/2025", "9/19/2025", "9/20/2025", "9/21/2025"}
	grid := scheduleGrid(dates, [][]string{
		{"", "8:00 am", "BOOKED"},
		{"", "", "BOOKED"},
		{"", "9:00 am", "BOOKED"},
	})

	sched := ParseSchedule(grid)
	assert.Len(t, sched, 1)
	assert.NotContains(t, sched, "9:00 am")
}

func TestParseScheduleShortGrid(t *testing.T) {
	assert.Empty(t, ParseSchedule(nil))
	assert.Empty(t, ParseSchedule([][]string{{"just"}, {"a"}, {"few"}, {"rows"}}))
}

func TestParseBookersWindow(t *testing.T) {
	grid := [][]string{
		{"Time", "Booker"},
		{"8:00 am", "ada"},
		{"8:30 am", ""},
		{"9:00 am", "grace"},
		{"9:30 am", "joan"},
		{"10:00 am", ""},
		{"10:30 am", "mary"},
		{"11:00 am", ""},
		{"11:30 am", "kat"},
		{"12:00 pm", "beyond the window"},
	}

	bookers := ParseBookers(grid)
	require.Len(t, bookers, 8)
	assert.Equal(t, schedule.Booker{Time: "8:00 am", Name: "ada"}, bookers[0])
	assert.False(t, bookers[1].Assigned())
	// The ninth data row is outside the fixed window.
	for _, b := range bookers {
		assert.NotEqual(t, "12:00 pm", b.Time)
	}
}

func TestParseBookersShortGrid(t *testing.T) {
	grid := [][]string{
		{"Time", "Booker"},
		{"8:00 am", "ada"},
		{"8:30 am"},
	}
	bookers := ParseBookers(grid)
	require.Len(t, bookers, 2)
	assert.Equal(t, "", bookers[1].Name)
}
