package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akary-web/blog-api/internal/store"
	"github.com/akary-web/blog-api/internal/testutils"
)

func TestCategoryStore_CreateAndGet(t *testing.T) {
	db := testutils.SetupTestDB(t)
	categories := store.NewCategoryStore(db)
	ctx := context.Background()

	created, err := categories.Create(ctx, "Tech")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero(), "createdAt should be populated")

	got, err := categories.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech", got.Name)
}

func TestCategoryStore_Create_EmptyName(t *testing.T) {
	db := testutils.SetupTestDB(t)
	categories := store.NewCategoryStore(db)

	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := categories.Create(context.Background(), tt.input)

			var validationErr *store.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCategoryStore_Update(t *testing.T) {
	db := testutils.SetupTestDB(t)
	categories := store.NewCategoryStore(db)
	ctx := context.Background()

	created, err := categories.Create(ctx, "Tceh")
	require.NoError(t, err)

	updated, err := categories.Update(ctx, created.ID, "Tech")
	require.NoError(t, err)
	assert.Equal(t, "Tech", updated.Name)

	got, err := categories.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech", got.Name, "prior name should not be retrievable")
}

func TestCategoryStore_Delete(t *testing.T) {
	db := testutils.SetupTestDB(t)
	categories := store.NewCategoryStore(db)
	ctx := context.Background()

	created, err := categories.Create(ctx, "Temp")
	require.NoError(t, err)

	require.NoError(t, categories.Delete(ctx, created.ID))

	_, err = categories.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// Every operation on a missing id reports ErrNotFound, never another kind.
func TestCategoryStore_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	categories := store.NewCategoryStore(db)
	ctx := context.Background()

	const missing = uint(9999)

	t.Run("get", func(t *testing.T) {
		_, err := categories.Get(ctx, missing)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		_, err := categories.Update(ctx, missing, "Anything")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		err := categories.Delete(ctx, missing)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCategoryStore_List_NewestFirst(t *testing.T) {
	db := testutils.SetupTestDB(t)
	categories := store.NewCategoryStore(db)
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	base := time.Now().Add(-time.Hour)
	for i, name := range names {
		created, err := categories.Create(ctx, name)
		require.NoError(t, err)
		// Spread createdAt so the ordering is unambiguous.
		err = db.Model(created).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error
		require.NoError(t, err)
	}

	listed, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Third", listed[0].Name)
	assert.Equal(t, "Second", listed[1].Name)
	assert.Equal(t, "First", listed[2].Name)

	// A new row takes the head of the listing.
	_, err = categories.Create(ctx, "Fourth")
	require.NoError(t, err)

	listed, err = categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, "Fourth", listed[0].Name)
}
