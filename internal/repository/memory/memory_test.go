package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promocodeapi/internal/model"
	"promocodeapi/internal/repository"
)

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps seed order", func(t *testing.T) {
		repo := NewEmployeeRepository()

		items, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "owner@somemail.ru", items[0].Email)
		assert.Equal(t, "andreev@somemail.ru", items[1].Email)
	})

	t.Run("empty repository returns empty slice", func(t *testing.T) {
		repo := New[model.Employee]()

		items, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("returns a snapshot", func(t *testing.T) {
		repo := NewRoleRepository()

		items, _ := repo.GetAll(ctx)
		items[0].Name = "changed"

		again, _ := repo.GetAll(ctx)
		assert.Equal(t, "Admin", again[0].Name)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	t.Run("found", func(t *testing.T) {
		seed := SeedEmployees()[1]

		got, err := repo.GetByID(ctx, seed.ID)

		require.NoError(t, err)
		assert.Equal(t, seed, *got)
	})

	t.Run("not found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, uuid.New())

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id when missing", func(t *testing.T) {
		repo := New[model.Employee]()

		created, err := repo.Create(ctx, &model.Employee{Email: "a@x.com", FullName: "A B"})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", got.Email)
	})

	t.Run("keeps provided id", func(t *testing.T) {
		repo := New[model.Employee]()
		id := uuid.New()

		created, err := repo.Create(ctx, &model.Employee{ID: id})

		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := NewEmployeeRepository()
		dup := SeedEmployees()[0]

		created, err := repo.Create(ctx, &dup)

		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
		assert.Nil(t, created)
	})

	t.Run("appends at the end", func(t *testing.T) {
		repo := NewEmployeeRepository()

		created, err := repo.Create(ctx, &model.Employee{Email: "new@x.com"})
		require.NoError(t, err)

		items, _ := repo.GetAll(ctx)
		require.Len(t, items, 3)
		assert.Equal(t, created.ID, items[2].ID)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("path id wins over payload id", func(t *testing.T) {
		repo := NewEmployeeRepository()
		target := SeedEmployees()[0]

		updated, err := repo.Update(ctx, target.ID, &model.Employee{
			ID:       uuid.New(),
			Email:    "updated@x.com",
			FullName: "Updated Name",
		})

		require.NoError(t, err)
		assert.Equal(t, target.ID, updated.ID)

		items, _ := repo.GetAll(ctx)
		require.Len(t, items, 2)
		assert.Equal(t, "updated@x.com", items[0].Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo := NewEmployeeRepository()

		updated, err := repo.Update(ctx, uuid.New(), &model.Employee{})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, updated)
	})
}

func TestRepository_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("existing", func(t *testing.T) {
		repo := NewEmployeeRepository()
		target := SeedEmployees()[0]

		require.NoError(t, repo.Remove(ctx, target.ID))

		_, err := repo.GetByID(ctx, target.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("missing is a no-op", func(t *testing.T) {
		repo := NewEmployeeRepository()

		assert.NoError(t, repo.Remove(ctx, uuid.New()))

		items, _ := repo.GetAll(ctx)
		assert.Len(t, items, 2)
	})
}

func TestRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := New[model.Employee]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.Create(ctx, &model.Employee{})
			if err != nil {
				return
			}
			_, _ = repo.GetByID(ctx, created.ID)
			_, _ = repo.GetAll(ctx)
		}()
	}
	wg.Wait()

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 50)
}
