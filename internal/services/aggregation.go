package services

import (
	"sort"
	"time"

	"lifehub/internal/models"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel groups expenses without a memo.
const UncategorizedLabel = "未分類"

var hundred = decimal.NewFromInt(100)

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyPivot sums income and expense per calendar month, oldest month first.
// Months without entries are not emitted.
func MonthlyPivot(entries []models.LedgerEntry) []models.MonthlyBucket {
	byMonth := make(map[time.Time]*models.MonthlyBucket)

	for _, entry := range entries {
		month := monthStart(entry.Date)
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &models.MonthlyBucket{Month: month}
			byMonth[month] = bucket
		}

		switch entry.Category {
		case models.CategoryIncome:
			bucket.Income += entry.Amount
		case models.CategoryExpense:
			bucket.Expense += entry.Amount
		}
	}

	buckets := make([]models.MonthlyBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		bucket.Balance = bucket.Income - bucket.Expense
		buckets = append(buckets, *bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})

	return buckets
}

// ExpenseBreakdown sums expense entries per memo. Largest amount first, ties
// broken by label.
func ExpenseBreakdown(entries []models.LedgerEntry) []models.ExpenseSlice {
	byLabel := make(map[string]int64)
	var total int64

	for _, entry := range entries {
		if entry.Category != models.CategoryExpense {
			continue
		}
		label := UncategorizedLabel
		if entry.Memo != nil && *entry.Memo != "" {
			label = *entry.Memo
		}
		byLabel[label] += entry.Amount
		total += entry.Amount
	}

	slices := make([]models.ExpenseSlice, 0, len(byLabel))
	for label, amount := range byLabel {
		slices = append(slices, models.ExpenseSlice{
			Label:  label,
			Amount: amount,
			Share:  share(amount, total),
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Label < slices[j].Label
	})

	return slices
}

func share(amount, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(amount).
		Mul(hundred).
		Div(decimal.NewFromInt(total)).
		Round(1)
}

// BuildChartData flattens a pivot and a breakdown into parallel arrays.
func BuildChartData(pivot []models.MonthlyBucket, breakdown []models.ExpenseSlice) models.ChartData {
	chart := models.ChartData{
		Labels:        make([]string, 0, len(pivot)),
		Income:        make([]int64, 0, len(pivot)),
		Expense:       make([]int64, 0, len(pivot)),
		Balance:       make([]int64, 0, len(pivot)),
		ExpenseLabels: make([]string, 0, len(breakdown)),
		ExpenseValues: make([]int64, 0, len(breakdown)),
	}

	for _, bucket := range pivot {
		chart.Labels = append(chart.Labels, bucket.MonthLabel())
		chart.Income = append(chart.Income, bucket.Income)
		chart.Expense = append(chart.Expense, bucket.Expense)
		chart.Balance = append(chart.Balance, bucket.Balance)
	}

	for _, slice := range breakdown {
		chart.ExpenseLabels = append(chart.ExpenseLabels, slice.Label)
		chart.ExpenseValues = append(chart.ExpenseValues, slice.Amount)
	}

	return chart
}

// Totals sums a pivot.
func Totals(pivot []models.MonthlyBucket) models.LedgerTotals {
	var totals models.LedgerTotals
	for _, bucket := range pivot {
		totals.Income += bucket.Income
		totals.Expense += bucket.Expense
	}
	totals.Balance = totals.Income - totals.Expense
	return totals
}
