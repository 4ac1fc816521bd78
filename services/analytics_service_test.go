package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/KanannSharmaa25/ai-life-analytics/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Entry{}, &models.User{}))
	return db
}

func seedEntries(t *testing.T, db *gorm.DB, entries []models.Entry) {
	t.Helper()
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}
}

func day(offset int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestInsightsNotEnoughData(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)

	insights, err := svc.Insights(context.Background())
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0], "just getting started")

	// The fixed response does not depend on entry content.
	seedEntries(t, db, []models.Entry{
		{Date: day(0), SleepHours: 1, Mood: 1, Productivity: 1},
		{Date: day(1), SleepHours: 9, Mood: 9, Productivity: 9},
	})
	again, err := svc.Insights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, insights, again)
}

func TestInsightsThresholdRules(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	seedEntries(t, db, []models.Entry{
		{Date: day(0), SleepHours: 5, Mood: 7, Productivity: 8},
		{Date: day(1), SleepHours: 5, Mood: 7, Productivity: 8},
		{Date: day(2), SleepHours: 5, Mood: 7, Productivity: 8},
	})

	insights, err := svc.Insights(context.Background())
	require.NoError(t, err)
	require.Len(t, insights, 4)
	assert.Contains(t, insights[0], "average sleep is around 5.0 hours")
	assert.Contains(t, insights[1], "consistently strong")
	assert.Contains(t, insights[2], "positive link between your mood and productivity")
	assert.Equal(t, closingInsight, insights[3])
}

func TestInsightsBurnoutPattern(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	// Recent sleep and productivity both dip below their averages;
	// no other rule fires (avg sleep 6.2, avg productivity 5.6, avg mood 5).
	seedEntries(t, db, []models.Entry{
		{Date: day(0), SleepHours: 8, Mood: 5, Productivity: 8},
		{Date: day(1), SleepHours: 8, Mood: 5, Productivity: 8},
		{Date: day(2), SleepHours: 5, Mood: 5, Productivity: 4},
		{Date: day(3), SleepHours: 5, Mood: 5, Productivity: 4},
		{Date: day(4), SleepHours: 5, Mood: 5, Productivity: 4},
	})

	insights, err := svc.Insights(context.Background())
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Contains(t, insights[0], "dipped together")
	assert.Equal(t, closingInsight, insights[1])
}

func TestHeatmapBuckets(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	seedEntries(t, db, []models.Entry{
		{Date: day(0), SleepHours: 6.4, Mood: 5, Productivity: 5},
		{Date: day(1), SleepHours: 6.6, Mood: 5, Productivity: 5},
		{Date: day(2), SleepHours: 6.8, Mood: 5, Productivity: 5},
		{Date: day(3), SleepHours: 7.5, Mood: 5, Productivity: 5},
	})

	buckets, err := svc.Heatmap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []HeatmapBucket{
		{Sleep: 6, Count: 1},
		{Sleep: 7, Count: 2},
		{Sleep: 8, Count: 1},
	}, buckets)
}

func TestBestSleepRangeFirstMaximumWins(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	seedEntries(t, db, []models.Entry{
		{Date: day(0), SleepHours: 6.5, Mood: 5, Productivity: 8},
		{Date: day(1), SleepHours: 7.2, Mood: 5, Productivity: 8},
	})

	best, err := svc.BestSleepRange(context.Background())
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "6.5 hours", best.BestSleepRange)
	assert.Equal(t, 8.0, best.AverageProductivity)
}

func TestBestSleepRangeWholeNumberLabel(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	seedEntries(t, db, []models.Entry{
		{Date: day(0), SleepHours: 7, Mood: 5, Productivity: 8},
	})

	best, err := svc.BestSleepRange(context.Background())
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "7.0 hours", best.BestSleepRange)
}

func TestBestSleepRangeEmpty(t *testing.T) {
	svc := NewAnalyticsService(setupTestDB(t))
	best, err := svc.BestSleepRange(context.Background())
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestBurnoutClassification(t *testing.T) {
	cases := []struct {
		name    string
		sleep   float64
		prod    int
		message string
	}{
		{"high risk", 5, 3, "High burnout risk detected. Your body and mind may need recovery time."},
		{"sleep deprivation", 5, 7, "Sleep deprivation detected. This may affect focus and mood."},
		{"manageable", 8, 7, "Burnout risk appears manageable. Keep maintaining healthy habits."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewAnalyticsService(db)
			seedEntries(t, db, []models.Entry{
				{Date: day(0), SleepHours: tc.sleep, Mood: 5, Productivity: tc.prod},
			})

			status, err := svc.Burnout(context.Background())
			require.NoError(t, err)
			require.NotNil(t, status)
			assert.Equal(t, tc.message, status.Message)
			assert.Equal(t, tc.sleep, status.AverageSleep)
		})
	}
}

func TestBurnoutEmpty(t *testing.T) {
	svc := NewAnalyticsService(setupTestDB(t))
	status, err := svc.Burnout(context.Background())
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestBurnoutScore(t *testing.T) {
	scoreFor := func(t *testing.T, db *gorm.DB, sleep float64, prod int) BurnoutScore {
		require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Entry{}).Error)
		seedEntries(t, db, []models.Entry{
			{Date: day(0), SleepHours: sleep, Mood: 5, Productivity: prod},
		})
		score, err := NewAnalyticsService(db).BurnoutScore(context.Background())
		require.NoError(t, err)
		return score
	}

	t.Run("clamped high", func(t *testing.T) {
		score := scoreFor(t, setupTestDB(t), 2, 1)
		assert.Equal(t, 100, score.Score)
		assert.Equal(t, "High", score.Level)
	})

	t.Run("low", func(t *testing.T) {
		score := scoreFor(t, setupTestDB(t), 8, 8)
		assert.Equal(t, 28, score.Score)
		assert.Equal(t, "Low", score.Level)
	})

	t.Run("monotone in sleep deficit", func(t *testing.T) {
		db := setupTestDB(t)
		s8 := scoreFor(t, db, 8, 8).Score
		s6 := scoreFor(t, db, 6, 8).Score
		s4 := scoreFor(t, db, 4, 8).Score
		assert.Less(t, s8, s6)
		assert.Less(t, s6, s4)
		for _, s := range []int{s8, s6, s4} {
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	})

	t.Run("no data", func(t *testing.T) {
		svc := NewAnalyticsService(setupTestDB(t))
		score, err := svc.BurnoutScore(context.Background())
		require.NoError(t, err)
		assert.Equal(t, BurnoutScore{Score: 0, Level: "Unknown", Message: "Not enough data"}, score)
	})
}

func TestBurnoutTrend(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	seedEntries(t, db, []models.Entry{
		{Date: day(0), SleepHours: 4, Mood: 5, Productivity: 3},
		{Date: day(1), SleepHours: 8, Mood: 5, Productivity: 9},
		{Date: day(2), SleepHours: 0, Mood: 5, Productivity: 0},
	})

	trend, err := svc.BurnoutTrend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []BurnoutPoint{
		{Date: "2026-01-01", BurnoutScore: 40},
		{Date: "2026-01-02", BurnoutScore: 0},
		{Date: "2026-01-03", BurnoutScore: 100}, // 110 clamped
	}, trend)
}

func TestMoodProductivityCorrelation(t *testing.T) {
	t.Run("not enough data", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewAnalyticsService(db)
		seedEntries(t, db, []models.Entry{
			{Date: day(0), SleepHours: 7, Mood: 5, Productivity: 5},
			{Date: day(1), SleepHours: 7, Mood: 5, Productivity: 5},
		})

		result, err := svc.MoodProductivityCorrelation(context.Background())
		require.NoError(t, err)
		assert.Nil(t, result.Correlation)
		assert.Empty(t, result.Strength)
		assert.Equal(t, "Not enough data to analyze mood and productivity relationship.", result.Message)
	})

	t.Run("strong positive", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewAnalyticsService(db)
		seedEntries(t, db, []models.Entry{
			{Date: day(0), SleepHours: 7, Mood: 1, Productivity: 2},
			{Date: day(1), SleepHours: 7, Mood: 2, Productivity: 4},
			{Date: day(2), SleepHours: 7, Mood: 3, Productivity: 6},
		})

		result, err := svc.MoodProductivityCorrelation(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result.Correlation)
		assert.Equal(t, 1.0, *result.Correlation)
		assert.Equal(t, "Strong", result.Strength)
		assert.Equal(t, "Strong relationship between mood and productivity detected.", result.Message)
	})

	t.Run("strong negative", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewAnalyticsService(db)
		seedEntries(t, db, []models.Entry{
			{Date: day(0), SleepHours: 7, Mood: 1, Productivity: 6},
			{Date: day(1), SleepHours: 7, Mood: 2, Productivity: 4},
			{Date: day(2), SleepHours: 7, Mood: 3, Productivity: 2},
		})

		result, err := svc.MoodProductivityCorrelation(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result.Correlation)
		assert.Equal(t, -1.0, *result.Correlation)
		assert.Equal(t, "Strong", result.Strength)
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("not enough data", func(t *testing.T) {
		svc := NewAnalyticsService(setupTestDB(t))
		recs, err := svc.Recommendations(context.Background())
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Contains(t, recs[0], "a few more days")
	})

	t.Run("balanced default", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewAnalyticsService(db)
		seedEntries(t, db, []models.Entry{
			{Date: day(0), SleepHours: 8, Mood: 7, Productivity: 8},
			{Date: day(1), SleepHours: 8, Mood: 7, Productivity: 8},
			{Date: day(2), SleepHours: 8, Mood: 7, Productivity: 8},
		})

		recs, err := svc.Recommendations(context.Background())
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Contains(t, recs[0], "balanced overall")
	})

	t.Run("all three triggered", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewAnalyticsService(db)
		// avg sleep 5.5 (<6), avg productivity 4 (<5), recent sleep 4.67 < 5.5
		seedEntries(t, db, []models.Entry{
			{Date: day(0), SleepHours: 8, Mood: 5, Productivity: 4},
			{Date: day(1), SleepHours: 5, Mood: 5, Productivity: 4},
			{Date: day(2), SleepHours: 5, Mood: 5, Productivity: 4},
			{Date: day(3), SleepHours: 4, Mood: 5, Productivity: 4},
		})

		recs, err := svc.Recommendations(context.Background())
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Contains(t, recs[0], "sleeping less than ideal")
		assert.Contains(t, recs[1], "Productivity has been lower")
		assert.Contains(t, recs[2], "dipped recently")
	})
}
