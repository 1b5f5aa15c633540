package entities

import "time"

// Crop is one registered plot ("lavoura") with its plan outputs.
// Materials and Timeline are stored as JSON columns; HarvestLogs live in
// their own table keyed by CropID.
type Crop struct {
	CropID           string   `gorm:"primaryKey" json:"crop_id"`
	UserID           string   `json:"user_id" gorm:"index"`
	Name             string   `json:"name"`
	CropType         CropType `json:"crop_type"`
	SoilType         SoilType `json:"soil_type"`
	AreaHa           float64  `json:"area_ha"`
	ProductivityGoal string   `json:"productivity_goal"` // free text, e.g. "70 sc/ha"
	Spacing          string   `json:"spacing"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`

	// Planning outputs, set once at creation. Advice never changes afterwards.
	EstimatedCost        float64   `json:"estimated_cost"`
	EstimatedHarvestDate time.Time `json:"estimated_harvest_date"`
	Advice               string    `json:"advice"`

	Materials []Material      `gorm:"serializer:json" json:"materials"`
	Timeline  []TimelineStage `gorm:"serializer:json" json:"timeline"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates reports whether the plot center has been set. Once set it is
// treated as immutable.
func (c *Crop) HasCoordinates() bool { return c.Lat != nil && c.Lng != nil }

// Material is a planned input. Identity is array position; edits are
// by-index replace.
type Material struct {
	Name              string           `json:"name"`
	Quantity          float64          `json:"quantity"`
	Unit              string           `json:"unit"`
	UnitPriceEstimate float64          `json:"unit_price_estimate"`
	RealizedUnitCost  *float64         `json:"realized_unit_cost,omitempty"`
	Category          MaterialCategory `json:"category"`
}

// TimelineStage is one phase of the cultivation cycle. Order is significant
// for display only; there is no dependency enforcement between stages.
type TimelineStage struct {
	StageID    string      `json:"stage_id"`
	Title      string      `json:"title"`
	TargetDate string      `json:"target_date"` // YYYY-MM-DD
	Status     StageStatus `json:"status"`
	Tasks      []Task      `json:"tasks"`
}

type Task struct {
	TaskID string `json:"task_id"`
	Label  string `json:"label"`
	Done   bool   `json:"done"`
}
