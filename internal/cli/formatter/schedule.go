package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/helenrobert/mentordesk/internal/domain"
)

// RenderWeekGrid renders one week of the schedule as a day-by-day agenda.
// The event sequence is taken verbatim; events outside the week containing
// the earliest event are dropped from the grid. The grid is display-only
// and produces no interaction of its own.
func (t Theme) RenderWeekGrid(events []*domain.ScheduleEvent) string {
	if len(events) == 0 {
		return t.Dim("No upcoming sessions.")
	}

	earliest := events[0].Start
	for _, e := range events[1:] {
		if e.Start.Before(earliest) {
			earliest = e.Start
		}
	}
	weekStart := startOfWeek(earliest)
	weekEnd := weekStart.AddDate(0, 0, 7)

	byDay := make(map[int][]*domain.ScheduleEvent)
	for _, e := range events {
		if e.Start.Before(weekStart) || !e.Start.Before(weekEnd) {
			continue
		}
		day := int(e.Start.Sub(weekStart).Hours() / 24)
		byDay[day] = append(byDay[day], e)
	}
	for _, day := range byDay {
		sort.Slice(day, func(i, j int) bool { return day[i].Start.Before(day[j].Start) })
	}

	var b strings.Builder
	b.WriteString(t.Dim(fmt.Sprintf("Week of %s", weekStart.Format("Jan 2"))) + "\n")
	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		label := date.Format("Mon 02")
		if len(byDay[day]) == 0 {
			b.WriteString(fmt.Sprintf("  %s  %s\n", t.Dim(label), t.Dim("·")))
			continue
		}
		for i, e := range byDay[day] {
			prefix := PadRight(label, 6)
			if i > 0 {
				prefix = strings.Repeat(" ", 6)
			}
			span := fmt.Sprintf("%s–%s", e.Start.Format("15:04"), e.End.Format("15:04"))
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				t.StyleAccent.Render(prefix), t.Dim(span), t.StyleFg.Render(e.Title)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// startOfWeek returns the Monday at or before the given time, at midnight.
func startOfWeek(ts time.Time) time.Time {
	day := ts
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	day = day.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
