package entities

import "time"

// HarvestLog is one recorded delivery/storage event. Logs are exclusively
// owned by their parent crop; quantity must be > 0 to be saved.
type HarvestLog struct {
	LogID           string    `gorm:"primaryKey" json:"log_id"`
	CropID          string    `gorm:"index" json:"crop_id"`
	Date            time.Time `json:"date"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	StorageLocation string    `json:"storage_location"`
	QualityNote     string    `json:"quality_note"`
	CreatedAt       time.Time
}
