package serviceImp

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lavoura/entities"
	"lavoura/pkg/ai"
	cropsvc "lavoura/pkg/crop/service"
	"lavoura/pkg/wizard/service"
	"lavoura/pkg/wizard/types"
)

// ErrNeedsConfirmation is returned when advancing past the location step
// without coordinates and without an explicit confirm-skip.
var ErrNeedsConfirmation = errors.New("coordinates unset: confirm skipping the location step")

var ErrSessionNotFound = errors.New("wizard session not found")

// ValidationError blocks a step transition; the message is user-facing.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

type WizardSvc struct {
	mu       sync.Mutex
	sessions map[string]*types.Session
	llm      ai.Client
	crops    cropsvc.CropService
}

func New(llm ai.Client, crops cropsvc.CropService) *WizardSvc {
	return &WizardSvc{
		sessions: map[string]*types.Session{},
		llm:      llm,
		crops:    crops,
	}
}

func (s *WizardSvc) Start(mode types.Mode) *types.Session {
	if mode != types.ModeCompact {
		mode = types.ModeFull
	}
	sess := &types.Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Step:      1,
		Draft:     types.Draft{SoilType: string(entities.DefaultSoilType)},
		CreatedAt: time.Now(),
	}
	sess.StepName = mode.StepName(1)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *WizardSvc) get(id string) (*types.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *WizardSvc) Get(id string) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	out := *sess
	return &out, nil
}

func (s *WizardSvc) SetFields(id string, p service.DraftPatch) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	d := &sess.Draft
	if p.Name != nil {
		d.Name = strings.TrimSpace(*p.Name)
	}
	if p.CropType != nil {
		d.CropType = *p.CropType
	}
	if p.SoilType != nil {
		d.SoilType = *p.SoilType
	}
	if p.Area != nil {
		d.Area = strings.TrimSpace(*p.Area)
	}
	if p.ProductivityGoal != nil {
		d.ProductivityGoal = *p.ProductivityGoal
	}
	if p.Spacing != nil {
		d.Spacing = *p.Spacing
	}
	if p.Lat != nil {
		d.Lat = p.Lat
	}
	if p.Lng != nil {
		d.Lng = p.Lng
	}
	out := *sess
	return &out, nil
}

// parseArea accepts comma or dot decimals and requires a positive value.
func parseArea(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, &ValidationError{Msg: "informe uma área válida em hectares"}
	}
	return v, nil
}

// validateStep gates the forward transition out of the given step.
func validateStep(sess *types.Session, confirmSkip bool) error {
	d := sess.Draft
	name := sess.Mode.StepName(sess.Step)
	switch name {
	case "crop_type", "basic":
		if d.CropType == "" || !entities.CropType(d.CropType).Valid() {
			return &ValidationError{Msg: "selecione a cultura"}
		}
		if d.Name == "" {
			return &ValidationError{Msg: "informe o nome da lavoura"}
		}
		if _, err := parseArea(d.Area); err != nil {
			return err
		}
	case "location", "location_soil":
		if name == "location_soil" && !entities.SoilType(d.SoilType).Valid() {
			return &ValidationError{Msg: "selecione o tipo de solo"}
		}
		if d.Lat == nil || d.Lng == nil {
			if !confirmSkip {
				return ErrNeedsConfirmation
			}
		}
	case "agronomic":
		if !entities.SoilType(d.SoilType).Valid() {
			return &ValidationError{Msg: "selecione o tipo de solo"}
		}
	}
	return nil
}

func (s *WizardSvc) Next(id string, confirmSkip bool) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step >= sess.Mode.Steps() {
		return nil, &ValidationError{Msg: "already at the final step"}
	}
	if err := validateStep(sess, confirmSkip); err != nil {
		return nil, err
	}
	sess.Step++
	sess.StepName = sess.Mode.StepName(sess.Step)
	out := *sess
	return &out, nil
}

func (s *WizardSvc) Previous(id string) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step > 1 {
		sess.Step--
		sess.StepName = sess.Mode.StepName(sess.Step)
	}
	out := *sess
	return &out, nil
}

func (s *WizardSvc) Submit(id, uid string) (*entities.Crop, error) {
	s.mu.Lock()
	sess, err := s.get(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if sess.Step != sess.Mode.Steps() {
		s.mu.Unlock()
		return nil, &ValidationError{Msg: "submit is only allowed at the review step"}
	}
	// re-check the gated fields; earlier steps may have been weakened via SetFields
	area, err := parseArea(sess.Draft.Area)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	cropType, err := entities.ParseCropType(sess.Draft.CropType)
	if err != nil {
		s.mu.Unlock()
		return nil, &ValidationError{Msg: "selecione a cultura"}
	}
	soil, err := entities.ParseSoilType(sess.Draft.SoilType)
	if err != nil {
		soil = entities.DefaultSoilType
	}
	draft := sess.Draft
	s.mu.Unlock()

	// the LLM call happens outside the session lock; the session survives
	// untouched until the record is safely stored
	outcome, err := s.llm.GeneratePlan(ai.PlanRequest{
		Name:             draft.Name,
		CropType:         cropType,
		AreaHa:           area,
		SoilType:         soil,
		ProductivityGoal: draft.ProductivityGoal,
		Spacing:          draft.Spacing,
	})
	if err != nil {
		return nil, errors.New("não foi possível gerar o plano agora, tente novamente")
	}

	crop := &entities.Crop{
		CropID:               uuid.NewString(),
		UserID:               uid,
		Name:                 draft.Name,
		CropType:             cropType,
		SoilType:             soil,
		AreaHa:               area,
		ProductivityGoal:     draft.ProductivityGoal,
		Spacing:              draft.Spacing,
		Lat:                  draft.Lat,
		Lng:                  draft.Lng,
		EstimatedCost:        outcome.Plan.EstimatedCost,
		EstimatedHarvestDate: outcome.Plan.EstimatedHarvestDate,
		Advice:               outcome.Plan.Advice,
		Materials:            outcome.Plan.Materials,
		Timeline:             outcome.Plan.Timeline,
	}
	if err := s.crops.Create(crop); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return crop, nil
}
