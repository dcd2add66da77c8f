// Package analysis defines the value types and service contracts for the
// exploratory surface of the system: per-station summaries, regional
// rankings, weather correlations and resampled time series.
package analysis

import (
	"fmt"
	"time"
)

// Resolution selects the bucket size for time-series resampling.
type Resolution string

// Supported resampling resolutions
const (
	ResolutionRaw     Resolution = "raw"
	ResolutionHourly  Resolution = "hourly"
	ResolutionDaily   Resolution = "daily"
	ResolutionMonthly Resolution = "monthly"
)

// ParseResolution maps a request string to a Resolution. An empty string
// defaults to daily, matching the dashboard default.
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "":
		return ResolutionDaily, nil
	case string(ResolutionRaw), string(ResolutionHourly), string(ResolutionDaily), string(ResolutionMonthly):
		return Resolution(s), nil
	default:
		return "", fmt.Errorf("unsupported resolution: %s", s)
	}
}

// Bucket truncates a timestamp to the start of its resampling bucket in UTC.
func (r Resolution) Bucket(t time.Time) time.Time {
	t = t.UTC()
	switch r {
	case ResolutionHourly:
		return t.Truncate(time.Hour)
	case ResolutionDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case ResolutionMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// MetricSummary holds the descriptive statistics of one metric at one station.
type MetricSummary struct {
	Station string
	Metric  string
	Mean    float64
	Median  float64
	Std     float64
	Min     float64
	Max     float64
	Count   int
}

// StationRanking scores one station for a ranking metric. Stability is the
// inverse of the standard deviation; ranks are 1-based and lower is better.
type StationRanking struct {
	Station       string
	Average       float64
	Median        float64
	Stability     float64
	Records       int
	PotentialRank int
	StabilityRank int
	OverallScore  float64
}

// RankingReport is the full ranking over all stations for one metric,
// ordered by overall score, best first.
type RankingReport struct {
	Metric      string
	Rankings    []StationRanking
	Recommended string
}

// CorrelationMatrix holds pairwise Pearson coefficients between metrics.
// Values[i][j] correlates Metrics[i] with Metrics[j].
type CorrelationMatrix struct {
	Station string
	Metrics []string
	Values  [][]float64
}

// Pair is one (x, y) observation for a scatter of two metrics.
type Pair struct {
	X float64
	Y float64
}

// TimeSeriesPoint is one resampled bucket: the mean of all non-missing
// observations falling into it.
type TimeSeriesPoint struct {
	Timestamp time.Time
	Value     float64
	Count     int
}
