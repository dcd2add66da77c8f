package models

import (
	"strings"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
)

// DatasetModel is the GORM database model for datasets (infrastructure concern)
type DatasetModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Station         string    `gorm:"not null;index;type:varchar(100)"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	Status          string    `gorm:"not null;index;type:varchar(20)"`
	RowCount        int64     `gorm:"not null"`
	SkippedRows     int64     `gorm:"not null"`
	DroppedColumns  string    `gorm:"type:varchar(255)"`
	SourceDatasetID *string   `gorm:"type:uuid;index"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (DatasetModel) TableName() string {
	return "datasets"
}

// ToDomain converts GORM model to domain entity
func (m *DatasetModel) ToDomain() *datasets.Dataset {
	var dropped []string
	if m.DroppedColumns != "" {
		dropped = strings.Split(m.DroppedColumns, ",")
	}
	return &datasets.Dataset{
		ID:              m.ID,
		Station:         m.Station,
		Name:            m.Name,
		Status:          m.Status,
		RowCount:        m.RowCount,
		SkippedRows:     m.SkippedRows,
		DroppedColumns:  dropped,
		SourceDatasetID: m.SourceDatasetID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DatasetModel) FromDomain(d *datasets.Dataset) {
	m.ID = d.ID
	m.Station = d.Station
	m.Name = d.Name
	m.Status = d.Status
	m.RowCount = d.RowCount
	m.SkippedRows = d.SkippedRows
	m.DroppedColumns = strings.Join(d.DroppedColumns, ",")
	m.SourceDatasetID = d.SourceDatasetID
	m.DateTimeCreated = d.DateTimeCreated
}
