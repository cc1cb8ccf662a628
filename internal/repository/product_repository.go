package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-backend/internal/models"
)

// ErrNotFound se devuelve cuando el documento no existe o el ID no es válido
var ErrNotFound = errors.New("document not found")

const defaultTimeout = 5 * time.Second

type ProductRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewProductRepository(collection *mongo.Collection, timeout time.Duration) *ProductRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ProductRepository{
		collection: collection,
		timeout:    timeout,
	}
}

// Create inserta un producto nuevo y le asigna ID
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}

	return &product, nil
}

// FindAll lista todos los productos en orden de inserción
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// Search busca productos cuyo nombre o precio de compra contenga query,
// sin distinguir mayúsculas. query se trata como texto literal.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	if query == "" {
		return r.find(ctx, bson.M{})
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": []bson.M{
			{"name": pattern},
			{"purchasePrice": pattern},
		},
	}
	return r.find(ctx, filter)
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*r.timeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

// Update reemplaza nombre y precios y devuelve el documento actualizado
func (r *ProductRepository) Update(ctx context.Context, id string, update models.ProductUpdate, updatedAt time.Time) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set := bson.M{
		"name":           update.Name,
		"purchasePrice":  update.PurchasePrice,
		"retailPrice":    update.RetailPrice,
		"wholesalePrice": update.WholesalePrice,
		"updatedAt":      updatedAt,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	return &product, nil
}

// Delete borra el producto definitivamente
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
