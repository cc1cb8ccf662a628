package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"inventory-backend/internal/barcode"
	"inventory-backend/internal/idgen"
	"inventory-backend/internal/models"
	"inventory-backend/internal/pricecode"
	"inventory-backend/internal/repository"
)

// CreateProductInput son los campos de texto requeridos para registrar un producto;
// la imagen se pasa aparte a Create
type CreateProductInput struct {
	Name           string `json:"productName" validate:"required"`
	PurchasePrice  string `json:"purchasePrice" validate:"required"`
	RetailPrice    string `json:"retailPrice" validate:"required"`
	WholesalePrice string `json:"wholesalePrice" validate:"required"`
}

// UpdateProductInput no incluye imagen ni código de barras: no se pueden cambiar
type UpdateProductInput struct {
	Name           string `json:"productName" validate:"required"`
	PurchasePrice  string `json:"purchasePrice" validate:"required"`
	RetailPrice    string `json:"retailPrice" validate:"required"`
	WholesalePrice string `json:"wholesalePrice" validate:"required"`
}

type ProductService struct {
	repo           ProductRepository
	images         ImageSaver
	ids            idgen.Generator
	now            func() time.Time
	encodeOnUpdate bool
	log            logrus.FieldLogger
}

type ProductOption func(*ProductService)

// WithClock reemplaza time.Now para las marcas de tiempo
func WithClock(now func() time.Time) ProductOption {
	return func(s *ProductService) { s.now = now }
}

// WithEncodeOnUpdate hace que Update codifique precios igual que Create
func WithEncodeOnUpdate(enabled bool) ProductOption {
	return func(s *ProductService) { s.encodeOnUpdate = enabled }
}

func WithProductLogger(log logrus.FieldLogger) ProductOption {
	return func(s *ProductService) { s.log = log }
}

func NewProductService(repo ProductRepository, images ImageSaver, ids idgen.Generator, opts ...ProductOption) *ProductService {
	s := &ProductService{
		repo:   repo,
		images: images,
		ids:    ids,
		now:    time.Now,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create valida, guarda la imagen, codifica precios de venta, genera el
// código de barras y persiste. Si falla la persistencia la imagen queda huérfana.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput, image io.Reader) (*models.Product, error) {
	const msg = "All fields and product image are required"
	if err := validateStruct(in, msg); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, &ValidationError{Field: "productImage", Message: msg}
	}

	imagePath, err := s.images.Save(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("store product image: %w", err)
	}

	now := s.now()
	product := &models.Product{
		Name:           in.Name,
		PurchasePrice:  in.PurchasePrice,
		RetailPrice:    pricecode.EncodePrice(in.RetailPrice),
		WholesalePrice: pricecode.EncodePrice(in.WholesalePrice),
		Image:          imagePath,
		Barcode:        barcode.Generate(s.ids.NextID()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"product_id": product.ID.Hex(),
		"barcode":    product.Barcode,
	}).Info("product created")

	return product, nil
}

// Update sobrescribe nombre y precios; imagen y código de barras no cambian.
// Por defecto los precios se guardan tal cual llegan.
func (s *ProductService) Update(ctx context.Context, id string, in UpdateProductInput) (*models.Product, error) {
	if err := validateStruct(in, "All fields are required"); err != nil {
		return nil, err
	}

	update := models.ProductUpdate{
		Name:           in.Name,
		PurchasePrice:  in.PurchasePrice,
		RetailPrice:    in.RetailPrice,
		WholesalePrice: in.WholesalePrice,
	}
	if s.encodeOnUpdate {
		update.RetailPrice = pricecode.EncodePrice(in.RetailPrice)
		update.WholesalePrice = pricecode.EncodePrice(in.WholesalePrice)
	}

	product, err := s.repo.Update(ctx, id, update, s.now())
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}

	return product, nil
}

// Delete borra el producto definitivamente
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapNotFound(err, id)
	}

	s.log.WithField("product_id", id).Info("product deleted")
	return nil
}

// List devuelve todos los productos con la ruta de imagen relativa guardada
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// Search busca por subcadena en nombre o precio de compra, sin distinguir mayúsculas
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	return s.repo.Search(ctx, query)
}

// GetByID devuelve el producto con la imagen como URL absoluta bajo baseURL.
// Lee siempre del repositorio: un Delete o Update previo se ve de inmediato.
func (s *ProductService) GetByID(ctx context.Context, id, baseURL string) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}

	product.Image = ImageURL(baseURL, product.Image)
	return product, nil
}

func (s *ProductService) mapNotFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return err
}

// ImageURL une la URL base (esquema + host) con la ruta guardada
func ImageURL(baseURL, image string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(image, "/")
}
