// Package plotting renders analysis results as PNG charts with gonum/plot:
// station comparison box plots and bar charts, metric scatters, correlation
// heat maps and resampled time-series lines.
package plotting

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

func render(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render plot: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}
	return buf.Bytes(), nil
}

func axisLabel(metric string) string {
	if unit := measurements.MetricUnit(metric); unit != "" {
		return fmt.Sprintf("%s (%s)", metric, unit)
	}
	return metric
}

func sortedStations(distributions map[string][]float64) []string {
	stations := make([]string, 0, len(distributions))
	for station := range distributions {
		stations = append(stations, station)
	}
	sort.Strings(stations)
	return stations
}

// ComparisonBoxPlot draws one box per station over the non-missing values of
// a metric.
func ComparisonBoxPlot(metric string, distributions map[string][]float64) ([]byte, error) {
	if len(distributions) == 0 {
		return nil, fmt.Errorf("no distributions to plot for metric %s", metric)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s by station", metric)
	p.Y.Label.Text = axisLabel(metric)

	stations := sortedStations(distributions)
	for i, station := range stations {
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(distributions[station]))
		if err != nil {
			return nil, fmt.Errorf("failed to build box plot for %s: %w", station, err)
		}
		p.Add(box)
	}
	p.NominalX(stations...)

	return render(p)
}

// ComparisonBarChart draws the per-station means of one metric.
func ComparisonBarChart(summaries []*analysis.MetricSummary) ([]byte, error) {
	if len(summaries) == 0 {
		return nil, fmt.Errorf("no summaries to plot")
	}

	metric := summaries[0].Metric
	values := make(plotter.Values, len(summaries))
	stations := make([]string, len(summaries))
	for i, summary := range summaries {
		values[i] = summary.Mean
		stations[i] = summary.Station
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Average %s by station", metric)
	p.Y.Label.Text = axisLabel(metric)

	bars, err := plotter.NewBarChart(values, vg.Points(32))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(stations...)

	return render(p)
}

// ScatterPlot draws the observations of two metrics, one color per station.
func ScatterPlot(xMetric, yMetric string, byStation map[string][]analysis.Pair) ([]byte, error) {
	if len(byStation) == 0 {
		return nil, fmt.Errorf("no observations to plot for %s vs %s", xMetric, yMetric)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", yMetric, xMetric)
	p.X.Label.Text = axisLabel(xMetric)
	p.Y.Label.Text = axisLabel(yMetric)

	stations := make([]string, 0, len(byStation))
	for station := range byStation {
		stations = append(stations, station)
	}
	sort.Strings(stations)

	for i, station := range stations {
		pairs := byStation[station]
		xys := make(plotter.XYs, len(pairs))
		for j, pair := range pairs {
			xys[j].X = pair.X
			xys[j].Y = pair.Y
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to build scatter for %s: %w", station, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(scatter)
		p.Legend.Add(station, scatter)
	}
	p.Legend.Top = true

	return render(p)
}

// correlationGrid adapts a CorrelationMatrix to the heat map's grid interface.
type correlationGrid struct {
	matrix *analysis.CorrelationMatrix
}

func (g correlationGrid) Dims() (int, int) {
	n := len(g.matrix.Metrics)
	return n, n
}

func (g correlationGrid) Z(c, r int) float64 { return g.matrix.Values[r][c] }
func (g correlationGrid) X(c int) float64    { return float64(c) }
func (g correlationGrid) Y(r int) float64    { return float64(r) }

// CorrelationHeatMap draws the pairwise correlation matrix of one station.
func CorrelationHeatMap(matrix *analysis.CorrelationMatrix) ([]byte, error) {
	if matrix == nil || len(matrix.Metrics) == 0 {
		return nil, fmt.Errorf("no correlation matrix to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Metric correlations at %s", matrix.Station)

	heat := plotter.NewHeatMap(correlationGrid{matrix: matrix}, palette.Heat(12, 1))
	heat.Min, heat.Max = -1, 1
	p.Add(heat)

	ticks := make([]plot.Tick, len(matrix.Metrics))
	for i, metric := range matrix.Metrics {
		ticks[i] = plot.Tick{Value: float64(i), Label: metric}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	return render(p)
}

// TimeSeriesLine draws the bucket means of one metric over time.
func TimeSeriesLine(station, metric string, points []analysis.TimeSeriesPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to plot for %s at %s", metric, station)
	}

	xys := make(plotter.XYs, len(points))
	for i, point := range points {
		xys[i].X = float64(point.Timestamp.Unix())
		xys[i].Y = point.Value
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s over time at %s", metric, station)
	p.X.Label.Text = "Time"
	p.Y.Label.Text = axisLabel(metric)
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build time-series line: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)

	return render(p)
}
