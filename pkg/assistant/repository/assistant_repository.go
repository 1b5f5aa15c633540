package repository

import "lavoura/entities"

type MessageRepository interface {
	Append(m *entities.ChatMessage) error
	ListByCrop(cropID string) ([]entities.ChatMessage, error)
}
