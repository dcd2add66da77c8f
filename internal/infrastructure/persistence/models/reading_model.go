package models

import (
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"
)

// ReadingModel is the GORM database model for readings (infrastructure concern)
type ReadingModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	DatasetID string    `gorm:"not null;index;type:uuid"`
	Station   string    `gorm:"not null;index;type:varchar(100)"`
	Timestamp time.Time `gorm:"not null;index"`
	GHI       *float64
	DNI       *float64
	DHI       *float64
	Tamb      *float64
	RH        *float64
	WS        *float64
}

// TableName specifies the table name for GORM
func (ReadingModel) TableName() string {
	return "readings"
}

// ToDomain converts GORM model to domain entity
func (m *ReadingModel) ToDomain() *measurements.Reading {
	return &measurements.Reading{
		ID:        m.ID,
		DatasetID: m.DatasetID,
		Station:   m.Station,
		Timestamp: m.Timestamp,
		GHI:       m.GHI,
		DNI:       m.DNI,
		DHI:       m.DHI,
		Tamb:      m.Tamb,
		RH:        m.RH,
		WS:        m.WS,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReadingModel) FromDomain(r *measurements.Reading) {
	m.ID = r.ID
	m.DatasetID = r.DatasetID
	m.Station = r.Station
	m.Timestamp = r.Timestamp
	m.GHI = r.GHI
	m.DNI = r.DNI
	m.DHI = r.DHI
	m.Tamb = r.Tamb
	m.RH = r.RH
	m.WS = r.WS
}
