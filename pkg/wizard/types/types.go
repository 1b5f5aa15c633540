package types

import (
	"time"
)

// Mode selects the step layout. The full flow walks
// crop-type → location → agronomic → review; the compact one merges soil
// into the location step: basic → location+soil → review.
type Mode string

const (
	ModeFull    Mode = "full"
	ModeCompact Mode = "compact"
)

func (m Mode) Steps() int {
	if m == ModeCompact {
		return 3
	}
	return 4
}

// StepName labels the current step for the UI.
func (m Mode) StepName(step int) string {
	if m == ModeCompact {
		switch step {
		case 1:
			return "basic"
		case 2:
			return "location_soil"
		case 3:
			return "review"
		}
	}
	switch step {
	case 1:
		return "crop_type"
	case 2:
		return "location"
	case 3:
		return "agronomic"
	case 4:
		return "review"
	}
	return "unknown"
}

// Draft holds the form fields as entered; numeric fields stay raw text until
// validation parses them.
type Draft struct {
	Name             string   `json:"name"`
	CropType         string   `json:"crop_type"`
	SoilType         string   `json:"soil_type"`
	Area             string   `json:"area"` // hectares, raw text
	ProductivityGoal string   `json:"productivity_goal"`
	Spacing          string   `json:"spacing"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
}

type Session struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	Step      int       `json:"step"`
	StepName  string    `json:"step_name"`
	Draft     Draft     `json:"draft"`
	CreatedAt time.Time `json:"created_at"`
}
