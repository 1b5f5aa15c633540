package repository

import "lavoura/entities"

type HarvestRepository interface {
	Create(l *entities.HarvestLog) error
	FindByID(logID string) (*entities.HarvestLog, error)
	ListByCrop(cropID string) ([]entities.HarvestLog, error)
	Update(l *entities.HarvestLog) error
	Delete(logID string) error
}
