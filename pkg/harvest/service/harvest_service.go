package service

import "lavoura/entities"

// HarvestPatch applies only non-nil fields to an existing log.
type HarvestPatch struct {
	Date            *string  `json:"date"` // YYYY-MM-DD
	Quantity        *float64 `json:"quantity"`
	Unit            *string  `json:"unit"`
	StorageLocation *string  `json:"storage_location"`
	QualityNote     *string  `json:"quality_note"`
}

type HarvestService interface {
	Add(l *entities.HarvestLog) error
	Edit(logID, cropID string, p HarvestPatch) (*entities.HarvestLog, error)
	Delete(logID, cropID string) error
	List(cropID string) ([]entities.HarvestLog, error)
}
