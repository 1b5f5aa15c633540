package ai

import (
	"time"

	"lavoura/entities"
)

// PlanRequest carries the wizard's collected crop attributes.
type PlanRequest struct {
	Name             string            `json:"name"`
	CropType         entities.CropType `json:"crop_type"`
	AreaHa           float64           `json:"area_ha"`
	SoilType         entities.SoilType `json:"soil_type"`
	ProductivityGoal string            `json:"productivity_goal"`
	Spacing          string            `json:"spacing"`
}

// PlanResult is what a cultivation plan contains regardless of where it
// came from (model or fallback).
type PlanResult struct {
	EstimatedCost        float64                  `json:"estimated_cost"`
	EstimatedHarvestDate time.Time                `json:"estimated_harvest_date"`
	Materials            []entities.Material      `json:"materials"`
	Timeline             []entities.TimelineStage `json:"timeline"`
	Advice               string                   `json:"advice"`
}

// PlanOutcome distinguishes a genuine model answer from degraded fallback
// data, so callers can decide whether a retry is worth offering.
type PlanOutcome struct {
	Plan     PlanResult
	Degraded bool
	Reason   string
}

// ChatOutcome carries the assistant reply; on failure Text holds the fixed
// apology and Degraded is set.
type ChatOutcome struct {
	Text     string
	Degraded bool
	Reason   string
}

type Client interface {
	// GeneratePlan is total for transport/parse failures (they degrade to
	// the fallback plan); a non-nil error means no usable plan at all and
	// the caller must not create a record from it.
	GeneratePlan(req PlanRequest) (PlanOutcome, error)
	Chat(question, cropContext string) ChatOutcome
}

// FallbackCostPerHa prices the fallback estimate when the model is unreachable.
const FallbackCostPerHa = 3500.0

// FallbackCycleDays spaces the fallback harvest date from today.
const FallbackCycleDays = 120

const FallbackAdvice = "Não foi possível gerar recomendações personalizadas agora. " +
	"Siga o calendário agrícola regional para a cultura e consulte um agrônomo local."

const ApologyMessage = "Desculpe, não consegui responder agora. Tente novamente em instantes."

// FallbackPlan is the guaranteed-usable plan used when the model call fails.
// It never fails itself, so the wizard can always complete.
func FallbackPlan(req PlanRequest) PlanResult {
	return PlanResult{
		EstimatedCost:        req.AreaHa * FallbackCostPerHa,
		EstimatedHarvestDate: time.Now().AddDate(0, 0, FallbackCycleDays),
		Materials:            []entities.Material{},
		Timeline:             []entities.TimelineStage{},
		Advice:               FallbackAdvice,
	}
}
