package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"inventory-backend/internal/idgen"
)

const (
	// Extension es la extensión fija de todos los archivos subidos
	Extension = ".jpg"
	// PublicPrefix es el prefijo de las rutas guardadas y de la ruta estática
	PublicPrefix = "uploads"
)

var ErrImageNotFound = errors.New("image not found")

// ImageStore guarda imágenes en disco con nombres generados
type ImageStore struct {
	dir string
	ids idgen.Generator
}

// NewImageStore crea el directorio si no existe
func NewImageStore(dir string, ids idgen.Generator) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir, ids: ids}, nil
}

// Dir devuelve el directorio de subida
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save copia src a un archivo nuevo y devuelve la ruta pública relativa
// (por ejemplo "uploads/1790123456789.jpg") que se guarda en el producto.
func (s *ImageStore) Save(ctx context.Context, src io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.ids.NextID() + Extension
	full := filepath.Join(s.dir, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return path.Join(PublicPrefix, name), nil
}

// Resolve devuelve la ruta en disco de una imagen por nombre de archivo.
// Solo se aceptan nombres simples, sin separadores.
func (s *ImageStore) Resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrImageNotFound
	}

	full := filepath.Join(s.dir, name)
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrImageNotFound
		}
		return "", fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return "", ErrImageNotFound
	}

	return full, nil
}
