package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory-backend/internal/models"
)

// MemoryProductRepository guarda productos en memoria (STORE=memory).
// Aplica la misma semántica de búsqueda que la versión de MongoDB.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[primitive.ObjectID]models.Product)}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID] = *product
	return nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[objID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.Search(ctx, "")
}

func (r *MemoryProductRepository) Search(_ context.Context, query string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.PurchasePrice), q) {
			products = append(products, p)
		}
	}

	// mismo orden que el sort por _id de MongoDB
	sort.Slice(products, func(i, j int) bool {
		return products[i].ID.Hex() < products[j].ID.Hex()
	})
	return products, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, id string, update models.ProductUpdate, updatedAt time.Time) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[objID]
	if !ok {
		return nil, ErrNotFound
	}
	p.Name = update.Name
	p.PurchasePrice = update.PurchasePrice
	p.RetailPrice = update.RetailPrice
	p.WholesalePrice = update.WholesalePrice
	p.UpdatedAt = updatedAt
	r.products[objID] = p

	return &p, nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[objID]; !ok {
		return ErrNotFound
	}
	delete(r.products, objID)
	return nil
}

// MemorySettingsRepository guarda el documento de códigos en memoria
type MemorySettingsRepository struct {
	mu  sync.RWMutex
	doc *models.Setting
}

func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{}
}

func (r *MemorySettingsRepository) Save(_ context.Context, codes map[string]string, updatedAt time.Time) error {
	copied := make(map[string]string, len(codes))
	for k, v := range codes {
		copied[k] = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = &models.Setting{ID: models.SettingsID, Codes: copied, UpdatedAt: updatedAt}
	return nil
}

func (r *MemorySettingsRepository) Find(_ context.Context) (*models.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.doc == nil {
		return nil, ErrNotFound
	}
	doc := *r.doc
	return &doc, nil
}

func (r *MemorySettingsRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = nil
	return nil
}
