package agro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lavoura/entities"
)

func TestTotalEstimatedCost(t *testing.T) {
	assert.Equal(t, 0.0, TotalEstimatedCost(nil))
	assert.Equal(t, 0.0, TotalEstimatedCost([]entities.Material{}))

	ms := []entities.Material{
		{Name: "NPK", Quantity: 10, UnitPriceEstimate: 2.5},
	}
	assert.Equal(t, 25.0, TotalEstimatedCost(ms))

	ms = append(ms, entities.Material{Name: "Semente", Quantity: 4, UnitPriceEstimate: 100})
	assert.Equal(t, 425.0, TotalEstimatedCost(ms))
}

func TestTotalEstimatedCostDoesNotClamp(t *testing.T) {
	// negative stored values propagate; clamping belongs to the editing layer
	ms := []entities.Material{{Quantity: 2, UnitPriceEstimate: -5}}
	assert.Equal(t, -10.0, TotalEstimatedCost(ms))
}

func TestTotalRealizedCost(t *testing.T) {
	realized := 3.0
	ms := []entities.Material{
		{Quantity: 10, UnitPriceEstimate: 2.5},                         // no realized cost → 0
		{Quantity: 2, UnitPriceEstimate: 9, RealizedUnitCost: &realized},
	}
	assert.Equal(t, 6.0, TotalRealizedCost(ms))
}

func TestLeadingNumber(t *testing.T) {
	assert.Equal(t, 70.0, LeadingNumber("70 sc/ha"))
	assert.Equal(t, 70.5, LeadingNumber("70,5 sc/ha"))
	assert.Equal(t, 70.5, LeadingNumber("70.5sc"))
	assert.Equal(t, 3.0, LeadingNumber("  3"))
	assert.Equal(t, 0.0, LeadingNumber(""))
	assert.Equal(t, 0.0, LeadingNumber("meta alta"))
	assert.Equal(t, 12.0, LeadingNumber("12."))
}

func TestExpectedHarvestTotal(t *testing.T) {
	assert.Equal(t, 700.0, ExpectedHarvestTotal("70 sc/ha", 10))
	assert.Equal(t, 0.0, ExpectedHarvestTotal("", 10))
	assert.Equal(t, 0.0, ExpectedHarvestTotal("meta alta", 5))
}

func TestHarvestProgressPercent(t *testing.T) {
	assert.Equal(t, 50.0, HarvestProgressPercent(350, 700))
	assert.Equal(t, 0.0, HarvestProgressPercent(100, 0)) // division-by-zero guard
	assert.Equal(t, 0.0, HarvestProgressPercent(100, -5))
	// overshoot stays visible in the raw value
	assert.InDelta(t, 120.0, HarvestProgressPercent(840, 700), 1e-9)
}

func TestTotalHarvested(t *testing.T) {
	logs := []entities.HarvestLog{{Quantity: 200}, {Quantity: 150}, {Quantity: 100}}
	assert.Equal(t, 450.0, TotalHarvested(logs))
	assert.Equal(t, 0.0, TotalHarvested(nil))
}

func TestEstimatedRevenue(t *testing.T) {
	assert.Equal(t, 900.0, EstimatedRevenue(450, 2))
	assert.Equal(t, 0.0, EstimatedRevenue(450, 0)) // unknown quote suppresses revenue
}

func TestEndToEndProgress(t *testing.T) {
	goal := "70 sc/ha"
	area := 10.0
	logs := []entities.HarvestLog{{Quantity: 200}, {Quantity: 150}, {Quantity: 100}}

	harvested := TotalHarvested(logs)
	expected := ExpectedHarvestTotal(goal, area)

	assert.Equal(t, 450.0, harvested)
	assert.Equal(t, 700.0, expected)
	assert.InDelta(t, 64.2857, HarvestProgressPercent(harvested, expected), 0.001)
}
