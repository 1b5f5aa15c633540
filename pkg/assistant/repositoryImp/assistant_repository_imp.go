package repositoryImp

import (
	"gorm.io/gorm"

	"lavoura/entities"
	"lavoura/pkg/assistant/repository"
)

type msgRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MessageRepository { return &msgRepo{db} }

func (r *msgRepo) Append(m *entities.ChatMessage) error { return r.db.Create(m).Error }

func (r *msgRepo) ListByCrop(cropID string) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := r.db.Where("crop_id = ?", cropID).Order("message_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
