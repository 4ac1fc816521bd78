package services

import (
	"fmt"
	"log"
	"sort"

	"github.com/KanannSharmaa25/ai-life-analytics/models"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// ClusteredDay is one day-record inside a behavioral cluster.
type ClusteredDay struct {
	SleepHours   float64 `json:"sleep_hours"`
	Mood         int     `json:"mood"`
	Productivity int     `json:"productivity"`
}

// LabeledDay is the narrator's input: a day-record already tagged with its
// cluster identifier. It is produced by the dashboard client, not by
// ClusterDays; the two units are deliberately independent.
type LabeledDay struct {
	Cluster      int     `json:"cluster"`
	SleepHours   float64 `json:"sleep_hours"`
	Productivity int     `json:"productivity"`
}

// dayObservation adapts an entry to the 3-dimensional
// (sleep, mood, productivity) feature space.
type dayObservation struct {
	entry models.Entry
}

func (o dayObservation) Coordinates() clusters.Coordinates {
	return clusters.Coordinates{
		o.entry.SleepHours,
		float64(o.entry.Mood),
		float64(o.entry.Productivity),
	}
}

func (o dayObservation) Distance(point clusters.Coordinates) float64 {
	return o.Coordinates().Distance(point)
}

// ClusterDays partitions entries into two behavioral groups via k-means.
// Fewer than 3 records, or any internal failure, yields an empty result;
// failures are logged and swallowed, never propagated.
func ClusterDays(entries []models.Entry) map[string][]ClusteredDay {
	if len(entries) < 3 {
		return map[string][]ClusteredDay{}
	}

	observations := make(clusters.Observations, 0, len(entries))
	for _, e := range entries {
		observations = append(observations, dayObservation{entry: e})
	}

	km := kmeans.New()
	partition, err := km.Partition(observations, 2)
	if err != nil {
		log.Println("clustering error:", err)
		return map[string][]ClusteredDay{}
	}

	// The library draws its initial centroids from its own random source,
	// so cluster order varies call to call. Label by ascending centroid
	// to keep the grouping stable.
	sort.Slice(partition, func(i, j int) bool {
		a, b := partition[i].Center, partition[j].Center
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	result := map[string][]ClusteredDay{}
	for label, cluster := range partition {
		key := fmt.Sprintf("%d", label)
		for _, obs := range cluster.Observations {
			day, ok := obs.(dayObservation)
			if !ok {
				log.Println("clustering error: unexpected observation type")
				return map[string][]ClusteredDay{}
			}
			result[key] = append(result[key], ClusteredDay{
				SleepHours:   day.entry.SleepHours,
				Mood:         day.entry.Mood,
				Productivity: day.entry.Productivity,
			})
		}
	}
	return result
}

// ExplainClusters narrates cluster-labeled day-records, one sentence per
// cluster, in first-encounter order of the cluster identifiers.
func ExplainClusters(days []LabeledDay) []string {
	if len(days) < 2 {
		return []string{"Not enough data to generate insights."}
	}

	type summary struct{ sleep []float64 }
	summaries := map[int]*summary{}
	var order []int
	for _, day := range days {
		if _, seen := summaries[day.Cluster]; !seen {
			summaries[day.Cluster] = &summary{}
			order = append(order, day.Cluster)
		}
		summaries[day.Cluster].sleep = append(summaries[day.Cluster].sleep, day.SleepHours)
	}

	var insights []string
	for _, c := range order {
		if mean(summaries[c].sleep) < 6 {
			insights = append(insights, fmt.Sprintf(
				"Cluster %d: These are low-energy days. Low sleep is linked to lower productivity.", c,
			))
		} else {
			insights = append(insights, fmt.Sprintf(
				"Cluster %d: These are high-performance days. Good sleep supports better productivity.", c,
			))
		}
	}
	return insights
}
