package restaurant_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	t.Run("valid restaurant", func(t *testing.T) {
		r, err := restaurant.New("Pizza Place", "1 Main St", "555-0101")
		require.NoError(t, err)
		assert.Equal(t, "Pizza Place", r.Name())
		assert.False(t, r.IsStub())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := restaurant.New("", "1 Main St", "555-0101")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed restaurant fails validation", func(t *testing.T) {
		var r restaurant.Restaurant
		assert.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}

func TestNewStub(t *testing.T) {
	t.Run("stub carries only the id", func(t *testing.T) {
		r, err := restaurant.NewStub(4)
		require.NoError(t, err)
		assert.Equal(t, int64(4), r.ID())
		assert.Empty(t, r.Name())
		assert.True(t, r.IsStub())
		require.NoError(t, r.Validate())
	})

	t.Run("non-positive id is rejected", func(t *testing.T) {
		_, err := restaurant.NewStub(0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestaurant_AssignID(t *testing.T) {
	r, err := restaurant.New("Pizza Place", "1 Main St", "555-0101")
	require.NoError(t, err)

	require.NoError(t, r.AssignID(3))
	assert.Equal(t, int64(3), r.ID())
	assert.ErrorIs(t, r.AssignID(4), restaurant.ErrIDAlreadyAssigned)
}

func TestRestaurant_Updates(t *testing.T) {
	r, err := restaurant.Restore(3, "Pizza Place", "1 Main St", "555-0101")
	require.NoError(t, err)

	require.NoError(t, r.Rename("Pasta Place"))
	assert.Equal(t, "Pasta Place", r.Name())
	assert.ErrorIs(t, r.Rename(""), errs.ErrValueIsRequired)

	r.ChangeAddress("2 Side St")
	r.ChangePhone("555-0202")
	assert.Equal(t, "2 Side St", r.Address())
	assert.Equal(t, "555-0202", r.Phone())
}
