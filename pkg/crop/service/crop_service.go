package service

import "lavoura/entities"

// CropPatch carries optional field updates; only non-nil fields are applied.
// Advice is deliberately absent: it never changes after creation.
type CropPatch struct {
	Name             *string  `json:"name"`
	CropType         *string  `json:"crop_type"`
	SoilType         *string  `json:"soil_type"`
	AreaHa           *float64 `json:"area_ha"`
	ProductivityGoal *string  `json:"productivity_goal"`
	Spacing          *string  `json:"spacing"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	EstimatedCost    *float64 `json:"estimated_cost"`
	HarvestDate      *string  `json:"estimated_harvest_date"` // YYYY-MM-DD
}

type CropService interface {
	Create(c *entities.Crop) error
	Get(id, uid string) (*entities.Crop, error)
	List(uid string) ([]entities.Crop, error)
	Patch(id, uid string, p CropPatch) (*entities.Crop, error)
	Delete(id, uid string) error

	AddMaterial(id, uid string, m entities.Material) (*entities.Crop, error)
	ReplaceMaterial(id, uid string, index int, m entities.Material) (*entities.Crop, error)
	RemoveMaterial(id, uid string, index int) (*entities.Crop, error)
}
