package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"lavoura/entities"
	"lavoura/pkg/harvest/repository"
	"lavoura/pkg/harvest/service"
)

type harvestSvc struct{ r repository.HarvestRepository }

func New(r repository.HarvestRepository) service.HarvestService { return &harvestSvc{r} }

func (s *harvestSvc) Add(l *entities.HarvestLog) error {
	if l.LogID == "" {
		return errors.New("log id is required")
	}
	if l.CropID == "" {
		return errors.New("crop id is required")
	}
	if l.Quantity <= 0 {
		return errors.New("quantity must be greater than zero")
	}
	if l.Date.IsZero() {
		l.Date = time.Now()
	}
	return s.r.Create(l)
}

func (s *harvestSvc) Edit(logID, cropID string, p service.HarvestPatch) (*entities.HarvestLog, error) {
	cur, err := s.r.FindByID(logID)
	if err != nil {
		return nil, err
	}
	if cur.CropID != cropID {
		return nil, errors.New("log does not belong to this crop")
	}
	l := *cur
	if p.Date != nil {
		d, err := time.Parse("2006-01-02", *p.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date: %w", err)
		}
		l.Date = d
	}
	if p.Quantity != nil {
		if *p.Quantity <= 0 {
			return nil, errors.New("quantity must be greater than zero")
		}
		l.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		l.Unit = *p.Unit
	}
	if p.StorageLocation != nil {
		l.StorageLocation = *p.StorageLocation
	}
	if p.QualityNote != nil {
		l.QualityNote = *p.QualityNote
	}
	if err := s.r.Update(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *harvestSvc) Delete(logID, cropID string) error {
	cur, err := s.r.FindByID(logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // absent is a no-op
		}
		return err
	}
	if cur.CropID != cropID {
		return errors.New("log does not belong to this crop")
	}
	return s.r.Delete(logID)
}

func (s *harvestSvc) List(cropID string) ([]entities.HarvestLog, error) {
	return s.r.ListByCrop(cropID)
}
