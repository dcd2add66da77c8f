package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/stats"
)

// analyticsReader resolves which readings analysis runs over: the newest
// dataset per station, preferring clean over raw.
type analyticsReader struct {
	datasetRepo datasets.DatasetRepository
	readingRepo measurements.ReadingRepository
}

// stations returns all stations with at least one dataset, sorted by name.
func (a *analyticsReader) stations(ctx context.Context) ([]string, error) {
	all, err := a.datasetRepo.List(ctx, datasets.NewDatasetQuery())
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, dataset := range all {
		if _, ok := seen[dataset.Station]; !ok {
			seen[dataset.Station] = struct{}{}
			names = append(names, dataset.Station)
		}
	}
	sort.Strings(names)
	return names, nil
}

// activeDataset picks the dataset analysis uses for a station.
func (a *analyticsReader) activeDataset(ctx context.Context, station string) (*datasets.Dataset, error) {
	query := datasets.NewDatasetQuery()
	query.Station = station
	candidates, err := a.datasetRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no dataset for station %s", station)
	}

	// Query order is newest first; take the newest clean dataset, falling
	// back to the newest raw one.
	for _, dataset := range candidates {
		if dataset.Status == datasets.StatusClean {
			return dataset, nil
		}
	}
	return candidates[0], nil
}

// stationReadings loads the readings of a station's active dataset ordered
// by timestamp.
func (a *analyticsReader) stationReadings(ctx context.Context, station string) ([]*measurements.Reading, error) {
	dataset, err := a.activeDataset(ctx, station)
	if err != nil {
		return nil, err
	}

	query := measurements.NewReadingQuery()
	query.DatasetID = dataset.ID
	return a.readingRepo.List(ctx, query)
}

func metricValues(readings []*measurements.Reading, metric string) []float64 {
	values := make([]float64, 0, len(readings))
	for _, reading := range readings {
		if v := reading.Metric(metric); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

// summaryService implements the SummaryService interface
type summaryService struct {
	analyticsReader
	logger logger.Logger
}

// NewSummaryService creates a new instance of SummaryService
func NewSummaryService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (analysis.SummaryService, error) {
	return &summaryService{
		analyticsReader: analyticsReader{datasetRepo: datasetRepo, readingRepo: readingRepo},
		logger:          logger,
	}, nil
}

// Summaries returns one MetricSummary per requested station.
func (s *summaryService) Summaries(ctx context.Context, metric string, stations []string) ([]*analysis.MetricSummary, error) {
	if !measurements.IsMetric(metric) {
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}

	if len(stations) == 0 {
		all, err := s.stations(ctx)
		if err != nil {
			return nil, err
		}
		stations = all
	}

	summaries := make([]*analysis.MetricSummary, 0, len(stations))
	for _, station := range stations {
		readings, err := s.stationReadings(ctx, station)
		if err != nil {
			return nil, err
		}

		values := metricValues(readings, metric)
		summary := &analysis.MetricSummary{
			Station: station,
			Metric:  metric,
			Count:   len(values),
		}
		if len(values) > 0 {
			summary.Mean = stats.Mean(values)
			summary.Median = stats.Median(values)
			summary.Std = stats.Std(values)
			summary.Min, summary.Max = stats.MinMax(values)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Distributions returns the raw non-missing values of a metric keyed by station.
func (s *summaryService) Distributions(ctx context.Context, metric string) (map[string][]float64, error) {
	if !measurements.IsMetric(metric) {
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}

	stations, err := s.stations(ctx)
	if err != nil {
		return nil, err
	}

	distributions := make(map[string][]float64, len(stations))
	for _, station := range stations {
		readings, err := s.stationReadings(ctx, station)
		if err != nil {
			return nil, err
		}
		if values := metricValues(readings, metric); len(values) > 0 {
			distributions[station] = values
		}
	}

	return distributions, nil
}

// rankingService implements the RankingService interface
type rankingService struct {
	analyticsReader
	logger logger.Logger
}

// NewRankingService creates a new instance of RankingService
func NewRankingService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (analysis.RankingService, error) {
	return &rankingService{
		analyticsReader: analyticsReader{datasetRepo: datasetRepo, readingRepo: readingRepo},
		logger:          logger,
	}, nil
}

// Rank scores every station with data for the given metric. Potential rank
// orders by average, stability rank by the inverse standard deviation; the
// overall score is the mean of the two ranks, lowest first.
func (s *rankingService) Rank(ctx context.Context, metric string) (*analysis.RankingReport, error) {
	if !measurements.IsMetric(metric) {
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}

	stations, err := s.stations(ctx)
	if err != nil {
		return nil, err
	}

	var rankings []analysis.StationRanking
	for _, station := range stations {
		readings, err := s.stationReadings(ctx, station)
		if err != nil {
			return nil, err
		}

		values := metricValues(readings, metric)
		if len(values) == 0 {
			continue
		}

		rankings = append(rankings, analysis.StationRanking{
			Station:   station,
			Average:   stats.Mean(values),
			Median:    stats.Median(values),
			Stability: 1 / (stats.Std(values) + 1e-9),
			Records:   len(values),
		})
	}
	if len(rankings) == 0 {
		return nil, fmt.Errorf("no readings available for metric %s", metric)
	}

	assignRank(rankings, func(r *analysis.StationRanking) float64 { return r.Average },
		func(r *analysis.StationRanking, rank int) { r.PotentialRank = rank })
	assignRank(rankings, func(r *analysis.StationRanking) float64 { return r.Stability },
		func(r *analysis.StationRanking, rank int) { r.StabilityRank = rank })

	for i := range rankings {
		rankings[i].OverallScore = float64(rankings[i].PotentialRank+rankings[i].StabilityRank) / 2
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].OverallScore != rankings[j].OverallScore {
			return rankings[i].OverallScore < rankings[j].OverallScore
		}
		return rankings[i].Station < rankings[j].Station
	})

	report := &analysis.RankingReport{
		Metric:      metric,
		Rankings:    rankings,
		Recommended: rankings[0].Station,
	}

	s.logger.Info("Ranked ", len(rankings), " stations by ", metric,
		", recommending ", report.Recommended)
	return report, nil
}

// assignRank writes 1-based ranks ordered by the key descending. Input order
// is alphabetical by station, which keeps ties deterministic.
func assignRank(rankings []analysis.StationRanking, key func(*analysis.StationRanking) float64, set func(*analysis.StationRanking, int)) {
	order := make([]int, len(rankings))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key(&rankings[order[a]]) > key(&rankings[order[b]])
	})
	for rank, idx := range order {
		set(&rankings[idx], rank+1)
	}
}

// correlationService implements the CorrelationService interface
type correlationService struct {
	analyticsReader
	logger logger.Logger
}

// NewCorrelationService creates a new instance of CorrelationService
func NewCorrelationService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (analysis.CorrelationService, error) {
	return &correlationService{
		analyticsReader: analyticsReader{datasetRepo: datasetRepo, readingRepo: readingRepo},
		logger:          logger,
	}, nil
}

// Matrix returns pairwise Pearson coefficients over all metrics for one
// station, using pairwise-complete observations.
func (s *correlationService) Matrix(ctx context.Context, station string) (*analysis.CorrelationMatrix, error) {
	readings, err := s.stationReadings(ctx, station)
	if err != nil {
		return nil, err
	}

	metrics := measurements.Metrics()
	values := make([][]float64, len(metrics))
	for i := range metrics {
		values[i] = make([]float64, len(metrics))
		for j := range metrics {
			xs, ys := pairwiseComplete(readings, metrics[i], metrics[j])
			values[i][j] = stats.Correlation(xs, ys)
		}
	}

	return &analysis.CorrelationMatrix{
		Station: station,
		Metrics: metrics,
		Values:  values,
	}, nil
}

// Pairs returns the complete (x, y) observations of two metrics for one station.
func (s *correlationService) Pairs(ctx context.Context, station, xMetric, yMetric string) ([]analysis.Pair, error) {
	if !measurements.IsMetric(xMetric) {
		return nil, fmt.Errorf("unknown metric: %s", xMetric)
	}
	if !measurements.IsMetric(yMetric) {
		return nil, fmt.Errorf("unknown metric: %s", yMetric)
	}

	readings, err := s.stationReadings(ctx, station)
	if err != nil {
		return nil, err
	}

	xs, ys := pairwiseComplete(readings, xMetric, yMetric)
	pairs := make([]analysis.Pair, len(xs))
	for i := range xs {
		pairs[i] = analysis.Pair{X: xs[i], Y: ys[i]}
	}
	return pairs, nil
}

// pairwiseComplete collects observations where both metrics are present.
func pairwiseComplete(readings []*measurements.Reading, xMetric, yMetric string) ([]float64, []float64) {
	var xs, ys []float64
	for _, reading := range readings {
		x := reading.Metric(xMetric)
		y := reading.Metric(yMetric)
		if x != nil && y != nil {
			xs = append(xs, *x)
			ys = append(ys, *y)
		}
	}
	return xs, ys
}

// timeSeriesService implements the TimeSeriesService interface
type timeSeriesService struct {
	analyticsReader
	logger logger.Logger
}

// NewTimeSeriesService creates a new instance of TimeSeriesService
func NewTimeSeriesService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (analysis.TimeSeriesService, error) {
	return &timeSeriesService{
		analyticsReader: analyticsReader{datasetRepo: datasetRepo, readingRepo: readingRepo},
		logger:          logger,
	}, nil
}

// Series returns bucket means at the requested resolution, ordered by time.
func (s *timeSeriesService) Series(ctx context.Context, station, metric string, resolution analysis.Resolution) ([]analysis.TimeSeriesPoint, error) {
	if !measurements.IsMetric(metric) {
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}

	readings, err := s.stationReadings(ctx, station)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[int64]*bucket)
	for _, reading := range readings {
		value := reading.Metric(metric)
		if value == nil {
			continue
		}
		key := resolution.Bucket(reading.Timestamp).Unix()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += *value
		b.count++
	}

	keys := make([]int64, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	points := make([]analysis.TimeSeriesPoint, len(keys))
	for i, key := range keys {
		b := buckets[key]
		points[i] = analysis.TimeSeriesPoint{
			Timestamp: time.Unix(key, 0).UTC(),
			Value:     b.sum / float64(b.count),
			Count:     b.count,
		}
	}
	return points, nil
}
