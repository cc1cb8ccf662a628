package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"inventory-backend/internal/models"
)

func productDoc(id primitive.ObjectID, name, purchase string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "purchasePrice", Value: purchase},
		{Key: "retailPrice", Value: "051"},
		{Key: "wholesalePrice", Value: "021"},
		{Key: "image", Value: "uploads/1.jpg"},
		{Key: "barcode", Value: "BARCODE-1"},
	}
}

func TestProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := &models.Product{Name: "Pen"}
		require.NoError(mt, repo.Create(ctx, p))
		assert.False(mt, p.ID.IsZero())
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		err := repo.Create(ctx, &models.Product{Name: "Pen"})
		assert.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "inventory.products", mtest.FirstBatch, productDoc(id, "Pen", "10")))

		p, err := repo.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id, p.ID)
		assert.Equal(mt, "Pen", p.Name)
		assert.Equal(mt, "BARCODE-1", p.Barcode)
	})

	mt.Run("find by id missing", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "inventory.products", mtest.FirstBatch))

		_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)

		_, err := repo.FindByID(ctx, "not-an-id")
		assert.ErrorIs(mt, err, ErrNotFound)
		_, err = repo.Update(ctx, "not-an-id", models.ProductUpdate{}, time.Now())
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.ErrorIs(mt, repo.Delete(ctx, "not-an-id"), ErrNotFound)
	})

	mt.Run("find all", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "inventory.products", mtest.FirstBatch,
			productDoc(primitive.NewObjectID(), "Pen", "10"),
			productDoc(primitive.NewObjectID(), "Pencil", "10"),
		))

		products, err := repo.FindAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, products, 2)
		assert.Equal(mt, "Pencil", products[1].Name)
	})

	mt.Run("search empty result is empty slice", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "inventory.products", mtest.FirstBatch))

		products, err := repo.Search(ctx, "a.b(")
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})

	mt.Run("update returns new document", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: productDoc(id, "Marker", "12")},
		})

		p, err := repo.Update(ctx, id.Hex(), models.ProductUpdate{Name: "Marker", PurchasePrice: "12"}, time.Now())
		require.NoError(mt, err)
		assert.Equal(mt, "Marker", p.Name)
		assert.Equal(mt, "uploads/1.jpg", p.Image)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), models.ProductUpdate{Name: "x"}, time.Now())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		assert.NoError(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewProductRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()), ErrNotFound)
	})
}

func TestSettingsRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("save upserts and prunes", func(mt *mtest.T) {
		repo := NewSettingsRepository(mt.Coll, time.Second)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		assert.NoError(mt, repo.Save(ctx, map[string]string{"1": "a"}, time.Now()))
	})

	mt.Run("save fails on upsert error", func(mt *mtest.T) {
		repo := NewSettingsRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))

		assert.Error(mt, repo.Save(ctx, map[string]string{"1": "a"}, time.Now()))
	})

	mt.Run("find", func(mt *mtest.T) {
		repo := NewSettingsRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "inventory.settings", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: models.SettingsID},
			{Key: "codes", Value: bson.D{{Key: "1", Value: "a"}, {Key: "2", Value: "b"}}},
		}))

		s, err := repo.Find(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, map[string]string{"1": "a", "2": "b"}, s.Codes)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		repo := NewSettingsRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "inventory.settings", mtest.FirstBatch))

		_, err := repo.Find(ctx)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete all", func(mt *mtest.T) {
		repo := NewSettingsRepository(mt.Coll, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.NoError(mt, repo.DeleteAll(ctx))
	})
}
