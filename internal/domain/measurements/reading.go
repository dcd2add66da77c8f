// Package measurements defines the core entity of the system: a single
// timestamped sensor reading taken at a measurement station, together with
// the query type and repository contract used to retrieve readings.
package measurements

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Metric name constants for the sensor columns of a station dataset.
const (
	MetricGHI  = "GHI"  // Global Horizontal Irradiance, W/m²
	MetricDNI  = "DNI"  // Direct Normal Irradiance, W/m²
	MetricDHI  = "DHI"  // Diffuse Horizontal Irradiance, W/m²
	MetricTamb = "Tamb" // Ambient temperature, °C
	MetricRH   = "RH"   // Relative humidity, %
	MetricWS   = "WS"   // Wind speed, m/s
)

// Metrics returns the sensor columns in canonical order.
func Metrics() []string {
	return []string{MetricGHI, MetricDNI, MetricDHI, MetricTamb, MetricRH, MetricWS}
}

// IsMetric reports whether name is a known sensor column.
func IsMetric(name string) bool {
	for _, m := range Metrics() {
		if m == name {
			return true
		}
	}
	return false
}

// MetricUnit returns the display unit for a metric, or an empty string for
// unknown names.
func MetricUnit(metric string) string {
	switch metric {
	case MetricGHI, MetricDNI, MetricDHI:
		return "W/m²"
	case MetricTamb:
		return "°C"
	case MetricRH:
		return "%"
	case MetricWS:
		return "m/s"
	default:
		return ""
	}
}

// Reading entity. Metric fields are pointers: a nil value is a missing cell
// in the source dataset, which the cleaning service may later impute.
type Reading struct {
	ID        string    `validate:"required,uuid4"`
	DatasetID string    `validate:"required,uuid4"`
	Station   string    `validate:"required,min=1,max=100"`
	Timestamp time.Time `validate:"required"`
	GHI       *float64
	DNI       *float64
	DHI       *float64
	Tamb      *float64
	RH        *float64 `validate:"omitempty,gte=0,lte=100"`
	WS        *float64 `validate:"omitempty,gte=0"`
}

// Validate for validating Reading struct
func (r *Reading) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Metric returns the value of the named sensor column, or nil when the name
// is unknown or the cell is missing.
func (r *Reading) Metric(name string) *float64 {
	switch name {
	case MetricGHI:
		return r.GHI
	case MetricDNI:
		return r.DNI
	case MetricDHI:
		return r.DHI
	case MetricTamb:
		return r.Tamb
	case MetricRH:
		return r.RH
	case MetricWS:
		return r.WS
	default:
		return nil
	}
}

// SetMetric assigns the named sensor column. Unknown names are ignored.
func (r *Reading) SetMetric(name string, value *float64) {
	switch name {
	case MetricGHI:
		r.GHI = value
	case MetricDNI:
		r.DNI = value
	case MetricDHI:
		r.DHI = value
	case MetricTamb:
		r.Tamb = value
	case MetricRH:
		r.RH = value
	case MetricWS:
		r.WS = value
	}
}

// ReadingQuery carries the filter, sort and pagination options for listing
// readings.
type ReadingQuery struct {
	DatasetID string    `validate:"omitempty,uuid4"`
	Station   string    `validate:"omitempty,min=1,max=100"`
	From      time.Time `validate:"omitempty"`
	To        time.Time `validate:"omitempty"`
	Limit     int       `validate:"gte=0"`
	Offset    int       `validate:"gte=0"`
	SortBy    string    `validate:"omitempty,oneof=timestamp station"`
	SortOrder string    `validate:"omitempty,oneof=asc desc"`
}

// NewReadingQuery creates a query with default sorting by timestamp.
func NewReadingQuery() *ReadingQuery {
	return &ReadingQuery{
		SortBy:    "timestamp",
		SortOrder: "asc",
	}
}

// Validate for validating ReadingQuery struct
func (q *ReadingQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ReadingQuery: %w", err)
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return fmt.Errorf("time window end %s precedes start %s", q.To, q.From)
	}

	return nil
}
