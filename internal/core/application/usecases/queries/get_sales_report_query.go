package queries

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewDailySalesReportQuery or NewMonthlySalesReportQuery constructor",
)

// reportPeriod selects the calendar window a sales report covers.
type reportPeriod int

const (
	periodDaily reportPeriod = iota + 1
	periodMonthly
)

// GetSalesReportQuery retrieves the orders of one calendar day or month
// together with summary figures. Orders of every status are included; a
// pending order already counts toward the day it was placed.
type GetSalesReportQuery struct {
	period reportPeriod
	day    time.Time
	year   int
	month  time.Month

	guard guard.ConstructorGuard
}

// NewDailySalesReportQuery creates a report query for one calendar day.
func NewDailySalesReportQuery(day time.Time) (GetSalesReportQuery, error) {
	if day.IsZero() {
		return GetSalesReportQuery{}, errs.NewValueIsRequiredError("report day")
	}

	return GetSalesReportQuery{
		period: periodDaily,
		day:    day,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMonthlySalesReportQuery creates a report query for one calendar month.
func NewMonthlySalesReportQuery(year int, month time.Month) (GetSalesReportQuery, error) {
	if year < 1 {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"report year", fmt.Errorf("%d is not a positive year", year))
	}
	if month < time.January || month > time.December {
		return GetSalesReportQuery{}, errs.NewValueIsOutOfRangeError(
			"report month", int(month), int(time.January), int(time.December))
	}

	return GetSalesReportQuery{
		period: periodMonthly,
		year:   year,
		month:  month,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// Day returns the covered day for daily reports.
func (q GetSalesReportQuery) Day() time.Time {
	return q.day
}

// Year returns the covered year for monthly reports.
func (q GetSalesReportQuery) Year() int {
	return q.year
}

// Month returns the covered month for monthly reports.
func (q GetSalesReportQuery) Month() time.Month {
	return q.month
}

// IsMonthly reports whether the query covers a whole month.
func (q GetSalesReportQuery) IsMonthly() bool {
	return q.period == periodMonthly
}

// SalesReportLine represents one order in a sales report.
type SalesReportLine struct {
	OrderID        int64
	RestaurantName string
	Status         string
	PlacedAt       time.Time
	ItemCount      int
	Total          decimal.Decimal
}

// GetSalesReportQueryResponse represents a sales report: the covered orders
// newest first plus summary figures. Revenue is the sum of the listed order
// totals.
type GetSalesReportQueryResponse struct {
	Orders     []SalesReportLine
	OrderCount int
	Revenue    decimal.Decimal
}
