package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lavoura/entities"
	croprepo "lavoura/pkg/crop/repository"
	"lavoura/pkg/timeline/service"
)

type timelineSvc struct{ crops croprepo.CropRepository }

func New(crops croprepo.CropRepository) service.TimelineService { return &timelineSvc{crops} }

// mutate loads the record, deep-copies the timeline, applies fn and writes
// the new record back. Consumers never touch the stored value in place.
func (s *timelineSvc) mutate(cropID, uid string, fn func([]entities.TimelineStage) ([]entities.TimelineStage, error)) (*entities.Crop, error) {
	cur, err := s.crops.FindByID(cropID, uid)
	if err != nil {
		return nil, err
	}
	tl := make([]entities.TimelineStage, len(cur.Timeline))
	for i, st := range cur.Timeline {
		tl[i] = st
		tl[i].Tasks = make([]entities.Task, len(st.Tasks))
		copy(tl[i].Tasks, st.Tasks)
	}
	tl, err = fn(tl)
	if err != nil {
		return nil, err
	}
	next := *cur
	next.Timeline = tl
	if err := s.crops.Update(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *timelineSvc) AddStage(cropID, uid, title, targetDate string, taskLabels []string) (*entities.Crop, error) {
	if title == "" {
		return nil, errors.New("stage title is required")
	}
	if targetDate != "" {
		if _, err := time.Parse("2006-01-02", targetDate); err != nil {
			return nil, fmt.Errorf("bad target date: %w", err)
		}
	}
	st := entities.TimelineStage{
		StageID:    uuid.NewString(),
		Title:      title,
		TargetDate: targetDate,
		Status:     entities.StagePending,
	}
	for _, label := range taskLabels {
		st.Tasks = append(st.Tasks, entities.Task{TaskID: uuid.NewString(), Label: label})
	}
	return s.mutate(cropID, uid, func(tl []entities.TimelineStage) ([]entities.TimelineStage, error) {
		return append(tl, st), nil
	})
}

func (s *timelineSvc) RemoveStage(cropID, uid, stageID string) (*entities.Crop, error) {
	return s.mutate(cropID, uid, func(tl []entities.TimelineStage) ([]entities.TimelineStage, error) {
		for i, st := range tl {
			if st.StageID == stageID {
				return append(tl[:i], tl[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("stage %s not found", stageID)
	})
}

// SetStageStatus sets the user-chosen status. Status is an independent field;
// it is not derived from the stage's task completion.
func (s *timelineSvc) SetStageStatus(cropID, uid, stageID string, status entities.StageStatus) (*entities.Crop, error) {
	if _, err := entities.ParseStageStatus(string(status)); err != nil {
		return nil, err
	}
	return s.mutate(cropID, uid, func(tl []entities.TimelineStage) ([]entities.TimelineStage, error) {
		for i := range tl {
			if tl[i].StageID == stageID {
				tl[i].Status = status
				return tl, nil
			}
		}
		return nil, fmt.Errorf("stage %s not found", stageID)
	})
}

func (s *timelineSvc) ToggleTask(cropID, uid, taskID string) (*entities.Crop, error) {
	return s.mutate(cropID, uid, func(tl []entities.TimelineStage) ([]entities.TimelineStage, error) {
		for i := range tl {
			for j := range tl[i].Tasks {
				if tl[i].Tasks[j].TaskID == taskID {
					tl[i].Tasks[j].Done = !tl[i].Tasks[j].Done
					return tl, nil
				}
			}
		}
		return nil, fmt.Errorf("task %s not found", taskID)
	})
}
