package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDelivererEarningsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetDelivererEarningsQuery(9)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(9), query.DelivererID())
}

func TestNewGetDelivererEarningsQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetDelivererEarningsQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetDelivererEarningsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDelivererEarningsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDelivererEarningsQueryIsNotConstructed)
}
