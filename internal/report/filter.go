package report

import (
	"strings"
	"time"

	"github.com/ukydev/apex-maintenance/internal/models"
)

// Accepted date formats. Parsing is permissive: anything that yields a
// calendar date is used, and strings matching none of these are treated
// as "no date" rather than rejected.
var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate parses s in loc and reports whether any layout matched.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FilterByDateRange keeps the jobs dated within [startDate, endDate] at day
// granularity, preserving their order. A start after the end, or a boundary
// that does not parse, yields an empty result; jobs with unparseable dates
// are never selected.
func FilterByDateRange(jobs []models.JobCard, startDate, endDate string) []models.JobCard {
	return FilterByDateRangeIn(jobs, startDate, endDate, time.Local)
}

// FilterByDateRangeIn is FilterByDateRange with an explicit location.
func FilterByDateRangeIn(jobs []models.JobCard, startDate, endDate string, loc *time.Location) []models.JobCard {
	out := []models.JobCard{}
	s, ok := ParseDate(startDate, loc)
	if !ok {
		return out
	}
	e, ok := ParseDate(endDate, loc)
	if !ok {
		return out
	}
	start, end := startOfDay(s.In(loc)), endOfDay(e.In(loc))
	if start.After(end) {
		return out
	}

	for _, job := range jobs {
		d, ok := ParseDate(job.Date, loc)
		if !ok {
			continue
		}
		day := startOfDay(d.In(loc))
		if !day.Before(start) && !day.After(end) {
			out = append(out, job)
		}
	}
	return out
}
