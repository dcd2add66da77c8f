// Package models contains the GORM database models mirroring the domain
// entities, with conversions in both directions.
package models
