package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBucket is one row of the monthly income/expense pivot.
type MonthlyBucket struct {
	Month   time.Time `json:"month"`
	Income  int64     `json:"income"`
	Expense int64     `json:"expense"`
	Balance int64     `json:"balance"`
}

// MonthLabel renders Month as YYYY-MM.
func (b MonthlyBucket) MonthLabel() string {
	return b.Month.Format("2006-01")
}

// ExpenseSlice is the summed expense for one memo label.
type ExpenseSlice struct {
	Label  string          `json:"label"`
	Amount int64           `json:"amount"`
	Share  decimal.Decimal `json:"share"`
}

// ChartData is the client-side chart payload. Arrays are never null.
type ChartData struct {
	Labels        []string `json:"labels"`
	Income        []int64  `json:"income"`
	Expense       []int64  `json:"expense"`
	Balance       []int64  `json:"balance"`
	ExpenseLabels []string `json:"expense_labels"`
	ExpenseValues []int64  `json:"expense_values"`
}

type LedgerTotals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}
