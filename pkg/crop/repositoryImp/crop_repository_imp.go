package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"lavoura/entities"
	"lavoura/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(c *entities.Crop) error {
	// ids are pre-assigned by the caller; a collision is a programmer error
	// and must fail loudly instead of corrupting the store
	var n int64
	if err := r.db.Model(&entities.Crop{}).Where("crop_id = ?", c.CropID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("duplicate crop id %s", c.CropID)
	}
	return r.db.Create(c).Error
}

func (r *cropRepo) FindByID(id, uid string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.Where("crop_id = ? AND user_id = ?", id, uid).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) ListByUser(uid string) ([]entities.Crop, error) {
	var out []entities.Crop
	// insertion order; newest-first is a presentation choice left to callers
	if err := r.db.Where("user_id = ?", uid).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) Update(c *entities.Crop) error {
	return r.db.Save(c).Error
}

func (r *cropRepo) Delete(id, uid string) error {
	// no-op when absent
	return r.db.Where("crop_id = ? AND user_id = ?", id, uid).Delete(&entities.Crop{}).Error
}
