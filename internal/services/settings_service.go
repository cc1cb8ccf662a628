package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"inventory-backend/internal/repository"
)

// SettingsService administra el mapa global de códigos de precio
type SettingsService struct {
	repo SettingsRepository
	now  func() time.Time
	log  logrus.FieldLogger
}

func NewSettingsService(repo SettingsRepository, log logrus.FieldLogger) *SettingsService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SettingsService{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

// Save reemplaza por completo los códigos guardados.
// Los valores escalares (texto, número, booleano) se guardan como texto.
func (s *SettingsService) Save(ctx context.Context, codes map[string]interface{}) error {
	if codes == nil {
		return &ValidationError{Field: "codes", Message: "Invalid settings format"}
	}

	normalized := make(map[string]string, len(codes))
	for key, value := range codes {
		str, err := toCode(value)
		if err != nil {
			return &ValidationError{Field: "codes." + key, Message: "Invalid settings format"}
		}
		normalized[key] = str
	}

	if err := s.repo.Save(ctx, normalized, s.now()); err != nil {
		return err
	}

	s.log.WithField("codes", len(normalized)).Info("price codes saved")
	return nil
}

// Get nunca falla por ausencia: sin documento devuelve un mapa vacío.
// Siempre lee del repositorio para ver el último Save o Delete.
func (s *SettingsService) Get(ctx context.Context) (map[string]string, error) {
	codes := map[string]string{}
	setting, err := s.repo.Find(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		for k, v := range setting.Codes {
			codes[k] = v
		}
	}

	return codes, nil
}

// Delete es idempotente
func (s *SettingsService) Delete(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.log.Info("price codes deleted")
	return nil
}

// toCode acepta solo escalares; null, objetos y listas se rechazan
func toCode(value interface{}) (string, error) {
	switch value.(type) {
	case nil, map[string]interface{}, []interface{}:
		return "", fmt.Errorf("unsupported code value %T", value)
	}
	return cast.ToStringE(value)
}
