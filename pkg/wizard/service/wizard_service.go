package service

import (
	"lavoura/entities"
	"lavoura/pkg/wizard/types"
)

// DraftPatch merges non-nil fields into the session draft; fields can be
// filled at any step.
type DraftPatch struct {
	Name             *string  `json:"name"`
	CropType         *string  `json:"crop_type"`
	SoilType         *string  `json:"soil_type"`
	Area             *string  `json:"area"`
	ProductivityGoal *string  `json:"productivity_goal"`
	Spacing          *string  `json:"spacing"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
}

type WizardService interface {
	Start(mode types.Mode) *types.Session
	Get(id string) (*types.Session, error)
	SetFields(id string, p DraftPatch) (*types.Session, error)
	// Next validates the current step; at the location step an unset
	// coordinate pair needs confirmSkip, otherwise ErrNeedsConfirmation.
	Next(id string, confirmSkip bool) (*types.Session, error)
	Previous(id string) (*types.Session, error)
	// Submit is only legal on the review step. On failure the session stays
	// intact and no record is created.
	Submit(id, uid string) (*entities.Crop, error)
}
