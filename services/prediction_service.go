package services

import (
	"math"

	"github.com/KanannSharmaa25/ai-life-analytics/models"

	"gonum.org/v1/gonum/stat"
)

type Prediction struct {
	PredictedProductivity float64 `json:"predicted_productivity"`
	Mode                  string  `json:"mode"`
	Confidence            int     `json:"confidence"`
}

// PredictProductivity estimates productivity for a hypothetical sleep-hours
// value from the historical (sleep, productivity) pairs. With no history it
// returns a fixed fallback; with fewer than 4 pairs it falls back to the
// plain average; otherwise it fits an ordinary least-squares regression and
// clamps the prediction to [1, 10].
func PredictProductivity(entries []models.Entry, sleepHours float64) Prediction {
	if len(entries) == 0 {
		return Prediction{
			PredictedProductivity: 5.0,
			Mode:                  "no-data",
			Confidence:            20,
		}
	}

	xs := make([]float64, len(entries))
	ys := make([]float64, len(entries))
	for i, e := range entries {
		xs[i] = e.SleepHours
		ys[i] = float64(e.Productivity)
	}

	if len(entries) < 4 {
		confidence := 30 + len(entries)*10
		if confidence > 60 {
			confidence = 60
		}
		return Prediction{
			PredictedProductivity: round2(mean(ys)),
			Mode:                  "average",
			Confidence:            confidence,
		}
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	predicted := alpha + beta*sleepHours
	predicted = math.Max(1, math.Min(10, predicted))

	return Prediction{
		PredictedProductivity: round2(predicted),
		Mode:                  "regression",
		Confidence:            75,
	}
}
