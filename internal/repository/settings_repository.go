package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-backend/internal/models"
)

// SettingsRepository maneja el único documento de códigos de precio
type SettingsRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewSettingsRepository(collection *mongo.Collection, timeout time.Duration) *SettingsRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SettingsRepository{
		collection: collection,
		timeout:    timeout,
	}
}

// Save reemplaza los códigos con un upsert sobre el _id fijo.
// Los documentos con otro _id (datos antiguos) se eliminan después.
func (r *SettingsRepository) Save(ctx context.Context, codes map[string]string, updatedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"codes":     codes,
		"updatedAt": updatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": models.SettingsID}, update, opts); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$ne": models.SettingsID}}); err != nil {
		return fmt.Errorf("prune legacy settings: %w", err)
	}

	return nil
}

// Find devuelve ErrNotFound si nunca se guardó configuración
func (r *SettingsRepository) Find(ctx context.Context) (*models.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var setting models.Setting
	err := r.collection.FindOne(ctx, bson.M{"_id": models.SettingsID}).Decode(&setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}

	return &setting, nil
}

// DeleteAll es idempotente
func (r *SettingsRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
