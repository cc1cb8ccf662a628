package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-backend/internal/models"
)

func seed(t *testing.T, repo *MemoryProductRepository, products ...models.Product) []models.Product {
	t.Helper()
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		p := p
		require.NoError(t, repo.Create(context.Background(), &p))
		out = append(out, p)
	}
	return out
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestMemorySearchIsCaseInsensitiveSubstring(t *testing.T) {
	repo := NewMemoryProductRepository()
	seed(t, repo,
		models.Product{Name: "Pen", PurchasePrice: "10"},
		models.Product{Name: "Pencil", PurchasePrice: "10"},
		models.Product{Name: "Eraser", PurchasePrice: "5"},
		models.Product{Name: "Notebook", PurchasePrice: "PEN-99"},
	)
	ctx := context.Background()

	got, err := repo.Search(ctx, "pen")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pen", "Pencil", "Notebook"}, names(got))

	got, err = repo.Search(ctx, "10")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pen", "Pencil"}, names(got))

	got, err = repo.Search(ctx, "ncI")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pencil"}, names(got))

	got, err = repo.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryUpdateKeepsImageAndBarcode(t *testing.T) {
	repo := NewMemoryProductRepository()
	created := seed(t, repo, models.Product{Name: "Pen", Image: "uploads/1.jpg", Barcode: "BARCODE-1"})
	id := created[0].ID.Hex()

	at := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	p, err := repo.Update(context.Background(), id, models.ProductUpdate{Name: "Marker", PurchasePrice: "3"}, at)
	require.NoError(t, err)
	assert.Equal(t, "Marker", p.Name)
	assert.Equal(t, "uploads/1.jpg", p.Image)
	assert.Equal(t, "BARCODE-1", p.Barcode)
	assert.Equal(t, at, p.UpdatedAt)

	_, err = repo.Update(context.Background(), "ffffffffffffffffffffffff", models.ProductUpdate{}, at)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	repo := NewMemoryProductRepository()
	created := seed(t, repo, models.Product{Name: "Pen"})
	id := created[0].ID.Hex()

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrNotFound)

	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySettings(t *testing.T) {
	repo := NewMemorySettingsRepository()
	ctx := context.Background()

	_, err := repo.Find(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	codes := map[string]string{"1": "a"}
	require.NoError(t, repo.Save(ctx, codes, time.Now()))
	codes["2"] = "b"

	doc, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "a"}, doc.Codes)

	require.NoError(t, repo.DeleteAll(ctx))
	require.NoError(t, repo.DeleteAll(ctx))
	_, err = repo.Find(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
