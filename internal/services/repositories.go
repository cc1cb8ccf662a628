package services

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"io"
	"time"

	"inventory-backend/internal/models"
)

// ProductRepository es la persistencia que usa ProductService
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Update(ctx context.Context, id string, update models.ProductUpdate, updatedAt time.Time) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository es la persistencia que usa SettingsService
type SettingsRepository interface {
	Save(ctx context.Context, codes map[string]string, updatedAt time.Time) error
	Find(ctx context.Context) (*models.Setting, error)
	DeleteAll(ctx context.Context) error
}

// ImageSaver guarda el binario de una imagen y devuelve su ruta relativa
type ImageSaver interface {
	Save(ctx context.Context, src io.Reader) (string, error)
}
