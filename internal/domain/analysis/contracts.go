package analysis

import "context"

// SummaryService computes descriptive statistics over station readings.
type SummaryService interface {
	// Summaries returns one MetricSummary per requested station. An empty
	// station list means all stations with data.
	Summaries(ctx context.Context, metric string, stations []string) ([]*MetricSummary, error)

	// Distributions returns the raw non-missing values of a metric keyed by
	// station, for distribution plots.
	Distributions(ctx context.Context, metric string) (map[string][]float64, error)
}

// RankingService ranks stations by solar potential and stability.
type RankingService interface {
	// Rank scores every station with data for the given metric.
	Rank(ctx context.Context, metric string) (*RankingReport, error)
}

// CorrelationService computes relationships between weather metrics.
type CorrelationService interface {
	// Matrix returns pairwise Pearson coefficients over all metrics for one
	// station, using pairwise-complete observations.
	Matrix(ctx context.Context, station string) (*CorrelationMatrix, error)

	// Pairs returns the complete (x, y) observations of two metrics for one
	// station.
	Pairs(ctx context.Context, station, xMetric, yMetric string) ([]Pair, error)
}

// TimeSeriesService resamples a station metric over time.
type TimeSeriesService interface {
	// Series returns bucket means at the requested resolution, ordered by
	// time. Buckets without observations are omitted.
	Series(ctx context.Context, station, metric string, resolution Resolution) ([]TimeSeriesPoint, error)
}
