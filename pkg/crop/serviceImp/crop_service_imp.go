package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"lavoura/entities"
	"lavoura/pkg/crop/repository"
	"lavoura/pkg/crop/service"
)

var validate = validator.New()

type cropSvc struct{ r repository.CropRepository }

func New(r repository.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) Create(c *entities.Crop) error {
	if c.CropID == "" {
		return errors.New("crop id is required")
	}
	if c.Name == "" {
		return errors.New("name is required")
	}
	if !c.CropType.Valid() {
		return fmt.Errorf("invalid crop type %q", c.CropType)
	}
	if c.AreaHa <= 0 {
		return errors.New("area must be positive")
	}
	return s.r.Create(c)
}

func (s *cropSvc) Get(id, uid string) (*entities.Crop, error) { return s.r.FindByID(id, uid) }
func (s *cropSvc) List(uid string) ([]entities.Crop, error)   { return s.r.ListByUser(uid) }
func (s *cropSvc) Delete(id, uid string) error                { return s.r.Delete(id, uid) }

// Patch is the single sanctioned way to produce an updated record: it copies
// the stored crop, applies the non-nil fields, and writes the new value back.
func (s *cropSvc) Patch(id, uid string, p service.CropPatch) (*entities.Crop, error) {
	cur, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	next, err := withPatch(cur, p)
	if err != nil {
		return nil, err
	}
	if err := s.r.Update(next); err != nil {
		return nil, err
	}
	return next, nil
}

func withPatch(cur *entities.Crop, p service.CropPatch) (*entities.Crop, error) {
	c := *cur
	if p.Name != nil {
		if *p.Name == "" {
			return nil, errors.New("name cannot be empty")
		}
		c.Name = *p.Name
	}
	if p.CropType != nil {
		ct, err := entities.ParseCropType(*p.CropType)
		if err != nil {
			return nil, err
		}
		c.CropType = ct
	}
	if p.SoilType != nil {
		st, err := entities.ParseSoilType(*p.SoilType)
		if err != nil {
			return nil, err
		}
		c.SoilType = st
	}
	if p.AreaHa != nil {
		if *p.AreaHa <= 0 {
			return nil, errors.New("area must be positive")
		}
		c.AreaHa = *p.AreaHa
	}
	if p.ProductivityGoal != nil {
		c.ProductivityGoal = *p.ProductivityGoal
	}
	if p.Spacing != nil {
		c.Spacing = *p.Spacing
	}
	if p.Lat != nil || p.Lng != nil {
		// the plot center is write-once
		if cur.HasCoordinates() {
			return nil, errors.New("coordinates already set")
		}
		if p.Lat == nil || p.Lng == nil {
			return nil, errors.New("lat and lng must be set together")
		}
		c.Lat, c.Lng = p.Lat, p.Lng
	}
	if p.EstimatedCost != nil {
		c.EstimatedCost = *p.EstimatedCost
	}
	if p.HarvestDate != nil {
		d, err := time.Parse("2006-01-02", *p.HarvestDate)
		if err != nil {
			return nil, fmt.Errorf("bad harvest date: %w", err)
		}
		c.EstimatedHarvestDate = d
	}
	return &c, nil
}

// materialInput mirrors entities.Material with the editing-layer clamps the
// aggregation functions deliberately do not perform.
type materialInput struct {
	Name              string   `validate:"required"`
	Quantity          float64  `validate:"gte=0"`
	UnitPriceEstimate float64  `validate:"gte=0"`
	RealizedUnitCost  *float64 `validate:"omitempty,gte=0"`
}

func checkMaterial(m entities.Material) error {
	return validate.Struct(materialInput{
		Name:              m.Name,
		Quantity:          m.Quantity,
		UnitPriceEstimate: m.UnitPriceEstimate,
		RealizedUnitCost:  m.RealizedUnitCost,
	})
}

func normalizeCategory(m *entities.Material) {
	switch m.Category {
	case entities.MatFertilizer, entities.MatSeed, entities.MatPesticide, entities.MatSoilAmendment, entities.MatOther:
	default:
		m.Category = entities.MatOther
	}
}

func (s *cropSvc) AddMaterial(id, uid string, m entities.Material) (*entities.Crop, error) {
	if err := checkMaterial(m); err != nil {
		return nil, err
	}
	normalizeCategory(&m)
	return s.mutateMaterials(id, uid, func(ms []entities.Material) ([]entities.Material, error) {
		return append(ms, m), nil
	})
}

func (s *cropSvc) ReplaceMaterial(id, uid string, index int, m entities.Material) (*entities.Crop, error) {
	if err := checkMaterial(m); err != nil {
		return nil, err
	}
	normalizeCategory(&m)
	return s.mutateMaterials(id, uid, func(ms []entities.Material) ([]entities.Material, error) {
		if index < 0 || index >= len(ms) {
			return nil, fmt.Errorf("material index %d out of range", index)
		}
		ms[index] = m
		return ms, nil
	})
}

func (s *cropSvc) RemoveMaterial(id, uid string, index int) (*entities.Crop, error) {
	return s.mutateMaterials(id, uid, func(ms []entities.Material) ([]entities.Material, error) {
		if index < 0 || index >= len(ms) {
			return nil, fmt.Errorf("material index %d out of range", index)
		}
		return append(ms[:index], ms[index+1:]...), nil
	})
}

// mutateMaterials loads the record, replaces the materials slice with a fresh
// copy transformed by fn, and round-trips the new record through the store.
func (s *cropSvc) mutateMaterials(id, uid string, fn func([]entities.Material) ([]entities.Material, error)) (*entities.Crop, error) {
	cur, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	ms := make([]entities.Material, len(cur.Materials))
	copy(ms, cur.Materials)
	ms, err = fn(ms)
	if err != nil {
		return nil, err
	}
	next := *cur
	next.Materials = ms
	if err := s.r.Update(&next); err != nil {
		return nil, err
	}
	return &next, nil
}
