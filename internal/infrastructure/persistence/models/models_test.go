//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetModelConversion(t *testing.T) {
	source := uuid.New().String()
	domain := &datasets.Dataset{
		ID:              uuid.New().String(),
		Station:         "Sierra Leone",
		Name:            "sierraleone_clean.csv",
		Status:          datasets.StatusClean,
		RowCount:        1000,
		SkippedRows:     3,
		DroppedColumns:  []string{"DHI", "WS"},
		SourceDatasetID: &source,
		DateTimeCreated: time.Now().UTC().Truncate(time.Second),
	}

	model := &DatasetModel{}
	model.FromDomain(domain)
	assert.Equal(t, "DHI,WS", model.DroppedColumns)

	roundTripped := model.ToDomain()
	assert.Equal(t, domain, roundTripped)
}

func TestDatasetModelEmptyDroppedColumns(t *testing.T) {
	domain := &datasets.Dataset{
		ID:              uuid.New().String(),
		Station:         "Benin",
		Name:            "benin_raw.csv",
		Status:          datasets.StatusRaw,
		RowCount:        10,
		DateTimeCreated: time.Now().UTC(),
	}

	model := &DatasetModel{}
	model.FromDomain(domain)
	assert.Equal(t, "", model.DroppedColumns)
	assert.Nil(t, model.ToDomain().DroppedColumns)
}

func TestReadingModelConversion(t *testing.T) {
	ghi := 851.2
	domain := &measurements.Reading{
		ID:        uuid.New().String(),
		DatasetID: uuid.New().String(),
		Station:   "Togo",
		Timestamp: time.Date(2021, 8, 9, 11, 0, 0, 0, time.UTC),
		GHI:       &ghi,
	}

	model := &ReadingModel{}
	model.FromDomain(domain)

	roundTripped := model.ToDomain()
	require.NotNil(t, roundTripped.GHI)
	assert.Equal(t, domain, roundTripped)
	assert.Nil(t, roundTripped.DNI)
}
