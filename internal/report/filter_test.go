package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/apex-maintenance/internal/models"
)

func datedJobs(dates ...string) []models.JobCard {
	jobs := make([]models.JobCard, len(dates))
	for i, d := range dates {
		jobs[i] = models.JobCard{ID: d, Date: d}
	}
	return jobs
}

func ids(jobs []models.JobCard) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestFilterByDateRange(t *testing.T) {
	jobs := datedJobs("2025-11-19", "2025-10-31", "2025-11-01", "2025-11-30", "2025-12-01", "2025-11-15")

	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{"inclusive boundaries keep order", "2025-11-01", "2025-11-30", []string{"2025-11-19", "2025-11-01", "2025-11-30", "2025-11-15"}},
		{"single day", "2025-11-19", "2025-11-19", []string{"2025-11-19"}},
		{"day before start excluded", "2025-11-01", "2025-11-01", []string{"2025-11-01"}},
		{"start after end is empty", "2025-11-30", "2025-11-01", []string{}},
		{"no matches", "2024-01-01", "2024-01-31", []string{}},
		{"malformed start is empty", "not-a-date", "2025-11-30", []string{}},
		{"malformed end is empty", "2025-11-01", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByDateRange(jobs, tt.start, tt.end)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilterByDateRange_TimestampedDates(t *testing.T) {
	jobs := []models.JobCard{
		{ID: "late", Date: "2025-11-30T23:30:00"},
		{ID: "early", Date: "2025-11-01T00:00:01"},
		{ID: "next", Date: "2025-12-01T00:00:00"},
	}
	got := FilterByDateRangeIn(jobs, "2025-11-01", "2025-11-30", time.UTC)
	assert.Equal(t, []string{"late", "early"}, ids(got))
}

func TestFilterByDateRange_MalformedJobDateSkipped(t *testing.T) {
	jobs := datedJobs("2025-11-10", "garbage", "")
	got := FilterByDateRange(jobs, "2025-11-01", "2025-11-30")
	assert.Equal(t, []string{"2025-11-10"}, ids(got))
}

func TestParseDate(t *testing.T) {
	loc := time.UTC
	for _, s := range []string{"2025-11-19", "2025-11-19T10:00:00Z", "2025/11/19", "11/19/2025", "Nov 19, 2025"} {
		d, ok := ParseDate(s, loc)
		if assert.True(t, ok, s) {
			assert.Equal(t, "2025-11-19", d.Format(models.DateLayout), s)
		}
	}
	_, ok := ParseDate("19th of November", loc)
	assert.False(t, ok)
}
