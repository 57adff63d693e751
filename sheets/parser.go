package sheets

import (
	"github.com/studysoc/discord-bot/schedule"
)

// Fixed worksheet geometry. The schedule sheet keeps its date headers on row
// 6 (index 5) across columns C-I, with time rows starting directly below;
// the bookers sheet is a fixed 8-row roster under a header row.
const (
	scheduleDateRow  = 5
	scheduleDateCol  = 2
	scheduleDays     = 7
	scheduleTimeCol  = 1
	scheduleFirstRow = 6

	bookersFirstRow = 1
	bookersRowCount = 8
)

// ParseSchedule turns a raw schedule worksheet grid into a Schedule. Row
// iteration stops at the first row with an empty time label; every time row
// carries exactly the header's date labels, with absent or empty cells read
// as NOT BOOKED and anything else preserved verbatim.
func ParseSchedule(grid [][]string) schedule.Schedule {
	sched := schedule.Schedule{}
	if len(grid) <= scheduleFirstRow {
		return sched
	}
	dates := make([]string, 0, scheduleDays)
	for i := 0; i < scheduleDays; i++ {
		dates = append(dates, cell(grid[scheduleDateRow], scheduleDateCol+i))
	}
	for _, row := range grid[scheduleFirstRow:] {
		timeLabel := cell(row, scheduleTimeCol)
		if timeLabel == "" {
			break
		}
		statuses := make(map[string]string, len(dates))
		for i, date := range dates {
			value := cell(row, scheduleDateCol+i)
			if value == "" {
				value = schedule.StatusNotBooked
			}
			statuses[date] = value
		}
		sched[timeLabel] = statuses
	}
	return sched
}

// ParseBookers reads the fixed roster window from the bookers worksheet
// grid: eight rows, (time, name) from the first two columns. There is no
// end-of-table sentinel; a short grid just yields fewer rows.
func ParseBookers(grid [][]string) schedule.Bookers {
	bookers := schedule.Bookers{}
	for i := bookersFirstRow; i < bookersFirstRow+bookersRowCount && i < len(grid); i++ {
		bookers = append(bookers, schedule.Booker{
			Time: cell(grid[i], 0),
			Name: cell(grid[i], 1),
		})
	}
	return bookers
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
