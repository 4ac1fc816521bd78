package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/KanannSharmaa25/ai-life-analytics/models"

	"gonum.org/v1/gonum/stat"
	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Insights ----------

const closingInsight = "Remember: trends matter more than single days. Consistency beats perfection — keep tracking, and the patterns will become clearer over time."

// Insights emits templated observations from fixed threshold rules over the
// full entry set. Fewer than 3 entries yields a single starter message.
func (s *AnalyticsService) Insights(ctx context.Context) ([]string, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	if len(entries) < 3 {
		return []string{
			"You’re just getting started. Add a few more daily entries and I’ll begin spotting meaningful patterns for you.",
		}, nil
	}

	sleepVals := make([]float64, len(entries))
	prodVals := make([]float64, len(entries))
	moodVals := make([]float64, len(entries))
	for i, e := range entries {
		sleepVals[i] = e.SleepHours
		prodVals[i] = float64(e.Productivity)
		moodVals[i] = float64(e.Mood)
	}

	avgSleep := round2(mean(sleepVals))
	avgProd := round2(mean(prodVals))
	avgMood := round2(mean(moodVals))

	recentSleep := mean(sleepVals[len(sleepVals)-3:])
	recentProd := mean(prodVals[len(prodVals)-3:])

	var insights []string

	// Sleep vs productivity
	if avgSleep < 6 {
		insights = append(insights, fmt.Sprintf(
			"Your average sleep is around %s hours, which is below the recommended range. This could be quietly impacting your focus and energy levels.",
			formatNumber(avgSleep),
		))
	} else if avgSleep >= 7 {
		insights = append(insights, fmt.Sprintf(
			"You’re averaging about %s hours of sleep — that’s a solid foundation for sustained productivity.",
			formatNumber(avgSleep),
		))
	}

	// Burnout pattern
	if recentSleep < avgSleep && recentProd < avgProd {
		insights = append(insights,
			"In the last few days, both sleep and productivity have dipped together. This pattern often appears just before burnout — it might be a good time to slow down and reset.",
		)
	}

	// Productivity trend
	if avgProd >= 7 {
		insights = append(insights,
			"Your productivity levels are consistently strong. Whatever routine you’re following lately seems to be working well — try to protect it.",
		)
	} else if avgProd < 5 {
		insights = append(insights,
			"Productivity has been on the lower side overall. Small changes like better sleep timing or short breaks could make a noticeable difference.",
		)
	}

	// Mood correlation
	if avgMood >= 6 && avgProd >= 6 {
		insights = append(insights,
			"There’s a positive link between your mood and productivity — on days you feel better mentally, you tend to perform better too.",
		)
	}

	insights = append(insights, closingInsight)

	return insights, nil
}

// ---------- Heatmap ----------

type HeatmapBucket struct {
	Sleep int `json:"sleep"`
	Count int `json:"count"`
}

// Heatmap buckets entries by sleep hours rounded to the nearest integer,
// sorted by bucket key ascending.
func (s *AnalyticsService) Heatmap(ctx context.Context) ([]HeatmapBucket, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}

	counts := map[int]int{}
	for _, e := range entries {
		counts[int(math.Round(e.SleepHours))]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	buckets := make([]HeatmapBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, HeatmapBucket{Sleep: k, Count: counts[k]})
	}
	return buckets, nil
}

// ---------- Best sleep range ----------

type BestSleepRange struct {
	BestSleepRange      string  `json:"best_sleep_range"`
	AverageProductivity float64 `json:"average_productivity"`
}

// BestSleepRange buckets entries by sleep hours rounded to one decimal and
// returns the bucket with the highest mean productivity. Ties go to the
// first-encountered bucket. Returns nil when there are no entries.
func (s *AnalyticsService) BestSleepRange(ctx context.Context) (*BestSleepRange, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	buckets := map[float64][]float64{}
	var order []float64
	for _, e := range entries {
		key := math.Round(e.SleepHours*10) / 10
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], float64(e.Productivity))
	}

	bestKey := order[0]
	bestAvg := mean(buckets[bestKey])
	for _, key := range order[1:] {
		if avg := mean(buckets[key]); avg > bestAvg {
			bestKey, bestAvg = key, avg
		}
	}

	return &BestSleepRange{
		BestSleepRange:      fmt.Sprintf("%s hours", formatNumber(bestKey)),
		AverageProductivity: round2(bestAvg),
	}, nil
}

// ---------- Burnout ----------

type BurnoutStatus struct {
	AverageSleep        float64 `json:"average_sleep"`
	AverageProductivity float64 `json:"average_productivity"`
	Message             string  `json:"message"`
}

func (s *AnalyticsService) Burnout(ctx context.Context) (*BurnoutStatus, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	avgSleep, avgProd := sleepProdAverages(entries)

	var message string
	switch {
	case avgSleep < 6 && avgProd < 5:
		message = "High burnout risk detected. Your body and mind may need recovery time."
	case avgSleep < 6:
		message = "Sleep deprivation detected. This may affect focus and mood."
	default:
		message = "Burnout risk appears manageable. Keep maintaining healthy habits."
	}

	return &BurnoutStatus{
		AverageSleep:        round2(avgSleep),
		AverageProductivity: round2(avgProd),
		Message:             message,
	}, nil
}

type BurnoutScore struct {
	Score   int    `json:"score"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// BurnoutScore computes clamp(0,100, (10-avg_sleep)*8 + (10-avg_prod)*6).
func (s *AnalyticsService) BurnoutScore(ctx context.Context) (BurnoutScore, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return BurnoutScore{}, err
	}
	if len(entries) == 0 {
		return BurnoutScore{Score: 0, Level: "Unknown", Message: "Not enough data"}, nil
	}

	avgSleep, avgProd := sleepProdAverages(entries)
	score := int(math.Max(0, math.Min(100, (10-avgSleep)*8+(10-avgProd)*6)))

	var level, msg string
	switch {
	case score > 70:
		level = "High"
		msg = "You're at high risk of burnout. Consider rest and workload adjustment."
	case score > 40:
		level = "Moderate"
		msg = "Some signs of fatigue detected. Small changes could help."
	default:
		level = "Low"
		msg = "Burnout risk is low. You're managing things well."
	}

	return BurnoutScore{Score: score, Level: level, Message: msg}, nil
}

type BurnoutPoint struct {
	Date         string `json:"date"`
	BurnoutScore int    `json:"burnout_score"`
}

// BurnoutTrend scores each entry individually: a sleep deficit below 6 hours
// and a productivity deficit below 5 each add 10 points per unit, capped at 100.
func (s *AnalyticsService) BurnoutTrend(ctx context.Context) ([]BurnoutPoint, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	trend := make([]BurnoutPoint, 0, len(entries))
	for _, e := range entries {
		score := 0.0
		if e.SleepHours < 6 {
			score += (6 - e.SleepHours) * 10
		}
		if e.Productivity < 5 {
			score += float64(5-e.Productivity) * 10
		}
		trend = append(trend, BurnoutPoint{
			Date:         e.Date.Format(dateLayout),
			BurnoutScore: int(math.Min(100, score)),
		})
	}
	return trend, nil
}

// ---------- Mood ↔ productivity ----------

type CorrelationResult struct {
	Correlation *float64 `json:"correlation"`
	Strength    string   `json:"strength,omitempty"`
	Message     string   `json:"message"`
}

func (s *AnalyticsService) MoodProductivityCorrelation(ctx context.Context) (CorrelationResult, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return CorrelationResult{}, err
	}
	if len(entries) < 3 {
		return CorrelationResult{
			Correlation: nil,
			Message:     "Not enough data to analyze mood and productivity relationship.",
		}, nil
	}

	moods := make([]float64, len(entries))
	prods := make([]float64, len(entries))
	for i, e := range entries {
		moods[i] = float64(e.Mood)
		prods[i] = float64(e.Productivity)
	}

	corr := stat.Correlation(moods, prods, nil)

	var strength string
	switch {
	case math.Abs(corr) > 0.6:
		strength = "Strong"
	case math.Abs(corr) > 0.3:
		strength = "Moderate"
	default:
		strength = "Weak"
	}

	rounded := round2(corr)
	return CorrelationResult{
		Correlation: &rounded,
		Strength:    strength,
		Message:     fmt.Sprintf("%s relationship between mood and productivity detected.", strength),
	}, nil
}

// ---------- Recommendations ----------

func (s *AnalyticsService) Recommendations(ctx context.Context) ([]string, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	if len(entries) < 3 {
		return []string{
			"Track your sleep, mood, and productivity for a few more days to unlock personalized recommendations.",
		}, nil
	}

	sleepVals := make([]float64, len(entries))
	prodVals := make([]float64, len(entries))
	for i, e := range entries {
		sleepVals[i] = e.SleepHours
		prodVals[i] = float64(e.Productivity)
	}

	avgSleep := mean(sleepVals)
	avgProd := mean(prodVals)
	recentSleep := mean(sleepVals[len(sleepVals)-3:])

	var recs []string

	if avgSleep < 6 {
		recs = append(recs,
			"You’ve been sleeping less than ideal. Try going to bed 30–45 minutes earlier for the next few days and see how your energy responds.",
		)
	}
	if avgProd < 5 {
		recs = append(recs,
			"Productivity has been lower recently. Consider breaking tasks into smaller chunks or scheduling demanding work during your most alert hours.",
		)
	}
	if recentSleep < avgSleep {
		recs = append(recs,
			"Your sleep has dipped recently compared to your average. This could explain recent fatigue — prioritizing rest now may prevent burnout later.",
		)
	}
	if len(recs) == 0 {
		recs = append(recs,
			"Your habits look balanced overall. Focus on maintaining consistency rather than pushing harder.",
		)
	}

	return recs, nil
}

// ---------- internals ----------

func sleepProdAverages(entries []models.Entry) (avgSleep, avgProd float64) {
	for _, e := range entries {
		avgSleep += e.SleepHours
		avgProd += float64(e.Productivity)
	}
	n := float64(len(entries))
	return avgSleep / n, avgProd / n
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// formatNumber renders a float for message text; whole values keep a
// trailing ".0" (5 -> "5.0", 6.25 -> "6.25").
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
