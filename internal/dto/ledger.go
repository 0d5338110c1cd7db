package dto

import "lifehub/internal/models"

// LedgerDateLayout is the calendar-day format accepted for ledger dates.
const LedgerDateLayout = "2006-01-02"

type LedgerEntryRequest struct {
	Date     string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Category string  `json:"category" form:"category" validate:"required,ledger_category"`
	Amount   int64   `json:"amount" form:"amount" validate:"gte=0"`
	Memo     *string `json:"memo" form:"memo"`
}

type LedgerListResponse struct {
	Entries []models.LedgerEntry   `json:"entries"`
	Monthly []models.MonthlyBucket `json:"monthly"`
	Totals  models.LedgerTotals    `json:"totals"`
}

type LedgerGraphResponse struct {
	Monthly   []models.MonthlyBucket `json:"monthly"`
	Breakdown []models.ExpenseSlice  `json:"breakdown"`
}
