// Package summary composes the read-only derived view of a crop: financial
// rollups, harvest progress, current market price and weather. Figures are
// recomputed from source fields on every call; nothing here is stored.
package summary

import (
	"golang.org/x/sync/errgroup"

	"lavoura/entities"
	"lavoura/pkg/agro"
	croprepo "lavoura/pkg/crop/repository"
	harvestrepo "lavoura/pkg/harvest/repository"
	"lavoura/pkg/market"
	"lavoura/pkg/weather"
)

// Progress carries the aggregation-core figures. EstimatedRevenue is nil
// when no quote is known, so the caller shows nothing instead of "R$0.00".
// ProgressPercent is raw: values above 100 stay visible.
type Progress struct {
	TotalEstimatedCost   float64  `json:"total_estimated_cost"`
	TotalRealizedCost    float64  `json:"total_realized_cost"`
	ExpectedHarvestTotal float64  `json:"expected_harvest_total"`
	TotalHarvested       float64  `json:"total_harvested"`
	ProgressPercent      float64  `json:"progress_percent"`
	MarketPrice          float64  `json:"market_price"`
	EstimatedRevenue     *float64 `json:"estimated_revenue,omitempty"`
}

type CropSummary struct {
	CropID   string            `json:"crop_id"`
	Name     string            `json:"name"`
	CropType entities.CropType `json:"crop_type"`
	Progress Progress          `json:"progress"`
	Weather  weather.Snapshot  `json:"weather"`
}

type Service struct {
	crops   croprepo.CropRepository
	logs    harvestrepo.HarvestRepository
	market  *market.Service
	weather *weather.Service
}

func New(crops croprepo.CropRepository, logs harvestrepo.HarvestRepository, m *market.Service, w *weather.Service) *Service {
	return &Service{crops: crops, logs: logs, market: m, weather: w}
}

func buildProgress(crop *entities.Crop, logs []entities.HarvestLog, price float64) Progress {
	harvested := agro.TotalHarvested(logs)
	expected := agro.ExpectedHarvestTotal(crop.ProductivityGoal, crop.AreaHa)
	p := Progress{
		TotalEstimatedCost:   agro.TotalEstimatedCost(crop.Materials),
		TotalRealizedCost:    agro.TotalRealizedCost(crop.Materials),
		ExpectedHarvestTotal: expected,
		TotalHarvested:       harvested,
		ProgressPercent:      agro.HarvestProgressPercent(harvested, expected),
		MarketPrice:          price,
	}
	if price > 0 {
		rev := agro.EstimatedRevenue(harvested, price)
		p.EstimatedRevenue = &rev
	}
	return p
}

// Progress computes the figures with the current market price for the crop's
// culture. The price is display-only and never persisted onto the record.
func (s *Service) Progress(cropID, uid string) (*Progress, error) {
	crop, err := s.crops.FindByID(cropID, uid)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByCrop(cropID)
	if err != nil {
		return nil, err
	}
	p := buildProgress(crop, logs, s.market.PriceFor(crop.CropType))
	return &p, nil
}

// Summary adds the weather leg, fetched in parallel with the market price.
// Both legs degrade independently; neither can fail the whole call.
func (s *Service) Summary(cropID, uid string) (*CropSummary, error) {
	crop, err := s.crops.FindByID(cropID, uid)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByCrop(cropID)
	if err != nil {
		return nil, err
	}

	var price float64
	var snap weather.Snapshot
	var g errgroup.Group
	g.Go(func() error {
		price = s.market.PriceFor(crop.CropType)
		return nil
	})
	g.Go(func() error {
		snap = s.weather.Current(crop.Lat, crop.Lng)
		return nil
	})
	_ = g.Wait()

	return &CropSummary{
		CropID:   crop.CropID,
		Name:     crop.Name,
		CropType: crop.CropType,
		Progress: buildProgress(crop, logs, price),
		Weather:  snap,
	}, nil
}
