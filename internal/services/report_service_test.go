package services

import (
	"testing"
	"time"

	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestBuildTimeChartDayLabels(t *testing.T) {
	buckets := []TimeBucket{
		{Bucket: day("2026-08-01"), Count: 3},
		{Bucket: day("2026-08-04"), Count: 1},
		{Bucket: day("2026-08-30"), Count: 7},
	}

	chart := BuildTimeChart(buckets, dayLabelFormat)
	assert.Equal(t, []string{"2026-08-01", "2026-08-04", "2026-08-30"}, chart.Labels)
	assert.Equal(t, []int64{3, 1, 7}, chart.Values)
}

func TestBuildTimeChartMonthLabels(t *testing.T) {
	buckets := []TimeBucket{
		{Bucket: day("2026-08-01"), Count: 12},
		{Bucket: day("2026-07-01"), Count: 9},
		{Bucket: day("2025-12-01"), Count: 2},
	}

	chart := BuildTimeChart(buckets, monthLabelFormat)
	assert.Equal(t, []string{"Aug 2026", "Jul 2026", "Dec 2025"}, chart.Labels)
	assert.Equal(t, []int64{12, 9, 2}, chart.Values)
}

// Empty buckets stay empty: the chart mirrors the sparse aggregation
// without zero back-fill.
func TestBuildTimeChartEmpty(t *testing.T) {
	chart := BuildTimeChart(nil, dayLabelFormat)
	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.Values)
}

func TestBuildRoleChart(t *testing.T) {
	buckets := []RoleBucket{
		{Role: "patient", Count: 10},
		{Role: "provider", Count: 4},
		{Role: "admin", Count: 1},
	}

	chart := BuildRoleChart(buckets)
	assert.Equal(t, []string{"patient", "provider", "admin"}, chart.Labels)

	var sum int64
	for _, v := range chart.Values {
		sum += v
	}
	assert.Equal(t, int64(15), sum)
}

func TestBuildRoleChartUnknownBucket(t *testing.T) {
	chart := BuildRoleChart([]RoleBucket{
		{Role: "", Count: 2},
		{Role: "patient", Count: 5},
	})
	assert.Equal(t, []string{"Unknown", "patient"}, chart.Labels)
	assert.Equal(t, []int64{2, 5}, chart.Values)
}

func TestAverageMood(t *testing.T) {
	assert.Equal(t, 0.0, AverageMood(nil))

	logs := []models.MentalHealthLog{
		{MoodScore: 7}, {MoodScore: 8}, {MoodScore: 6},
	}
	assert.Equal(t, 7.0, AverageMood(logs))

	logs = append(logs, models.MentalHealthLog{MoodScore: 4})
	// (7+8+6+4)/4 = 6.25 rounds to 6.3
	assert.Equal(t, 6.3, AverageMood(logs))
}

func TestRedirectFor(t *testing.T) {
	assert.Equal(t, "/dashboard", RedirectFor(&models.User{Role: models.RolePatient}))
	assert.Equal(t, "/dashboard", RedirectFor(&models.User{Role: models.RoleProvider}))
	assert.Equal(t, "/admin-panel", RedirectFor(&models.User{Role: models.RoleAdmin}))
	assert.Equal(t, "/admin-panel", RedirectFor(&models.User{Role: models.RolePatient, IsSuperuser: true}))
}
