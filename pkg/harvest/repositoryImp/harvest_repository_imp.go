package repositoryImp

import (
	"gorm.io/gorm"

	"lavoura/entities"
	"lavoura/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(l *entities.HarvestLog) error { return r.db.Create(l).Error }

func (r *harvestRepo) FindByID(logID string) (*entities.HarvestLog, error) {
	var l entities.HarvestLog
	if err := r.db.Where("log_id = ?", logID).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *harvestRepo) ListByCrop(cropID string) ([]entities.HarvestLog, error) {
	var out []entities.HarvestLog
	if err := r.db.Where("crop_id = ?", cropID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) Update(l *entities.HarvestLog) error { return r.db.Save(l).Error }

func (r *harvestRepo) Delete(logID string) error {
	return r.db.Where("log_id = ?", logID).Delete(&entities.HarvestLog{}).Error
}
