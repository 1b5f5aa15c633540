// Package agro derives financial and harvest-progress figures from a crop's
// materials, harvest logs and productivity goal. Every function is total:
// unparseable or missing numeric inputs count as zero so a malformed goal
// string never blocks rendering the rest of the record.
package agro

import (
	"strconv"
	"strings"

	"lavoura/entities"
)

// TotalEstimatedCost sums quantity × estimated unit price. No clamping here:
// a negative stored value propagates (the editing layer keeps inputs ≥ 0).
func TotalEstimatedCost(materials []entities.Material) float64 {
	var total float64
	for _, m := range materials {
		total += m.Quantity * m.UnitPriceEstimate
	}
	return total
}

// TotalRealizedCost sums quantity × realized unit cost, treating a missing
// realized cost as zero.
func TotalRealizedCost(materials []entities.Material) float64 {
	var total float64
	for _, m := range materials {
		if m.RealizedUnitCost != nil {
			total += m.Quantity * *m.RealizedUnitCost
		}
	}
	return total
}

// LeadingNumber extracts the leading numeric token of a free-text goal
// string ("70 sc/ha" → 70). Both comma and dot decimals are accepted.
// Returns 0 when no numeric token is found.
func LeadingNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			seenDigit = true
			end++
			continue
		}
		if (ch == '.' || ch == ',') && seenDigit {
			end++
			continue
		}
		break
	}
	if !seenDigit {
		return 0
	}
	tok := strings.ReplaceAll(s[:end], ",", ".")
	tok = strings.TrimRight(tok, ".")
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0
	}
	return v
}

// ExpectedHarvestTotal multiplies the parsed per-hectare goal by the area.
func ExpectedHarvestTotal(productivityGoal string, areaHa float64) float64 {
	return LeadingNumber(productivityGoal) * areaHa
}

func TotalHarvested(logs []entities.HarvestLog) float64 {
	var total float64
	for _, l := range logs {
		total += l.Quantity
	}
	return total
}

// HarvestProgressPercent is 0 when expected is not positive. The raw value
// may exceed 100 when the grower overshoots the goal; clamping is a display
// concern and the overshoot must stay visible here.
func HarvestProgressPercent(harvested, expected float64) float64 {
	if expected <= 0 {
		return 0
	}
	return harvested / expected * 100
}

// EstimatedRevenue is harvested × price. A price of 0 (unknown quote) yields
// 0; callers suppress the revenue display in that case.
func EstimatedRevenue(harvested, pricePerUnit float64) float64 {
	return harvested * pricePerUnit
}
