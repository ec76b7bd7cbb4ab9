package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDailySalesReportQuery_Valid(t *testing.T) {
	day := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	query, err := queries.NewDailySalesReportQuery(day)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.False(t, query.IsMonthly())
	assert.Equal(t, day, query.Day())
}

func TestNewDailySalesReportQuery_ZeroDay(t *testing.T) {
	_, err := queries.NewDailySalesReportQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewMonthlySalesReportQuery_Valid(t *testing.T) {
	query, err := queries.NewMonthlySalesReportQuery(2025, time.March)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.IsMonthly())
	assert.Equal(t, 2025, query.Year())
	assert.Equal(t, time.March, query.Month())
}

func TestNewMonthlySalesReportQuery_InvalidYear(t *testing.T) {
	_, err := queries.NewMonthlySalesReportQuery(0, time.March)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewMonthlySalesReportQuery_InvalidMonth(t *testing.T) {
	_, err := queries.NewMonthlySalesReportQuery(2025, time.Month(13))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetSalesReportQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSalesReportQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSalesReportQueryIsNotConstructed)
}
