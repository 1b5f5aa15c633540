package service

import "lavoura/entities"

type TimelineService interface {
	AddStage(cropID, uid, title, targetDate string, taskLabels []string) (*entities.Crop, error)
	RemoveStage(cropID, uid, stageID string) (*entities.Crop, error)
	SetStageStatus(cropID, uid, stageID string, status entities.StageStatus) (*entities.Crop, error)
	ToggleTask(cropID, uid, taskID string) (*entities.Crop, error)
}
