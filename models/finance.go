package models

import "time"

// FinanceType is the direction of a ledger entry.
type FinanceType string

const (
	FinanceIncome  FinanceType = "Income"
	FinanceExpense FinanceType = "Expense"
)

// IsValid reports whether t is Income or Expense.
func (t FinanceType) IsValid() bool {
	return t == FinanceIncome || t == FinanceExpense
}

// FinanceEntry is one row of the event ledger.
type FinanceEntry struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Type        FinanceType `json:"type"`
	Amount      Number      `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	CreatedAt   time.Time   `json:"createdAt"`
}
