package repository

import "lavoura/entities"

type CropRepository interface {
	Create(c *entities.Crop) error
	FindByID(id, uid string) (*entities.Crop, error)
	ListByUser(uid string) ([]entities.Crop, error)
	Update(c *entities.Crop) error
	Delete(id, uid string) error
}
