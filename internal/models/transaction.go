package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome    = "receita"
	TransactionTypeExpense   = "despesa"
	TransactionStatusPaid    = "pago"
	TransactionStatusPending = "pendente"
	TransactionStatusOverdue = "vencido"
)

type Transaction struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Type        string    `json:"type" db:"type" validate:"required,oneof=receita despesa"`
	Description string    `json:"description" db:"description" validate:"required"`
	Amount      float64   `json:"amount" db:"amount" validate:"gte=0.01"`
	Category    string    `json:"category" db:"category" validate:"required"`
	Date        string    `json:"date" db:"date" validate:"required,datetime=2006-01-02"`
	Status      string    `json:"status" db:"status" validate:"required,oneof=pago pendente vencido"`
	Reference   *string   `json:"reference" db:"reference"`
	Notes       *string   `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type FinancialSummary struct {
	From     string          `json:"from,omitempty"`
	To       string          `json:"to,omitempty"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
	Pending  decimal.Decimal `json:"pending"`
	Overdue  decimal.Decimal `json:"overdue"`
	Count    int             `json:"count"`
}
