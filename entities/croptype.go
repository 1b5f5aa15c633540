package entities

import (
	"fmt"
	"strings"
)

// CropType is the closed set of supported cultures. Widening the set means
// adding a constant here and nowhere else.
type CropType string

const (
	CropSoy       CropType = "soja"
	CropCorn      CropType = "milho"
	CropCotton    CropType = "algodao"
	CropSugarcane CropType = "cana"
	CropCoffee    CropType = "cafe"
	CropBean      CropType = "feijao"
)

var AllCropTypes = []CropType{CropSoy, CropCorn, CropCotton, CropSugarcane, CropCoffee, CropBean}

func ParseCropType(s string) (CropType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllCropTypes {
		if string(c) == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown crop type %q", s)
}

func (c CropType) Valid() bool {
	_, err := ParseCropType(string(c))
	return err == nil
}

// SoilType is the closed set of supported soil textures.
type SoilType string

const (
	SoilSandy SoilType = "arenoso"
	SoilClay  SoilType = "argiloso"
	SoilMixed SoilType = "misto"
)

// DefaultSoilType is what the wizard starts from before the user picks one.
const DefaultSoilType = SoilMixed

var AllSoilTypes = []SoilType{SoilSandy, SoilClay, SoilMixed}

func ParseSoilType(s string) (SoilType, error) {
	for _, t := range AllSoilTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown soil type %q", s)
}

func (t SoilType) Valid() bool {
	_, err := ParseSoilType(string(t))
	return err == nil
}

// MaterialCategory classifies a planned input.
type MaterialCategory string

const (
	MatFertilizer    MaterialCategory = "fertilizer"
	MatSeed          MaterialCategory = "seed"
	MatPesticide     MaterialCategory = "pesticide"
	MatSoilAmendment MaterialCategory = "soil_amendment"
	MatOther         MaterialCategory = "other"
)

// StageStatus is set by the user; it is not derived from task completion.
type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageDone       StageStatus = "done"
)

func ParseStageStatus(s string) (StageStatus, error) {
	switch StageStatus(s) {
	case StagePending, StageInProgress, StageDone:
		return StageStatus(s), nil
	}
	return "", fmt.Errorf("unknown stage status %q", s)
}
