package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("invalid date")

type FinanceService interface {
	// Summary totals the transactions dated within [from, to]. Empty bounds are open.
	Summary(ctx context.Context, from, to string) (*models.FinancialSummary, error)
	Transactions(ctx context.Context, from, to string) ([]*models.Transaction, error)
}

type financeService struct {
	repo   repositories.TransactionRepository
	logger *logging.Logger
}

func NewFinanceService(repo repositories.TransactionRepository, logger *logging.Logger) FinanceService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &financeService{repo: repo, logger: logger}
}

func (s *financeService) Transactions(ctx context.Context, from, to string) ([]*models.Transaction, error) {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return nil, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, d)
		}
	}
	return s.repo.ListByPeriod(ctx, from, to)
}

func (s *financeService) Summary(ctx context.Context, from, to string) (*models.FinancialSummary, error) {
	txs, err := s.Transactions(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sum := SummarizeTransactions(txs)
	sum.From, sum.To = from, to
	s.logger.Debug(ctx, "finance", "financial summary computed", map[string]any{"count": sum.Count})
	return &sum, nil
}

// SummarizeTransactions splits paid income and expenses from open amounts.
// Pending and overdue totals only count income still to be received.
func SummarizeTransactions(txs []*models.Transaction) models.FinancialSummary {
	var sum models.FinancialSummary
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		amount := decimal.NewFromFloat(tx.Amount)
		sum.Count++
		switch {
		case tx.Status == models.TransactionStatusPaid && tx.Type == models.TransactionTypeIncome:
			sum.Income = sum.Income.Add(amount)
		case tx.Status == models.TransactionStatusPaid && tx.Type == models.TransactionTypeExpense:
			sum.Expenses = sum.Expenses.Add(amount)
		case tx.Status == models.TransactionStatusPending && tx.Type == models.TransactionTypeIncome:
			sum.Pending = sum.Pending.Add(amount)
		case tx.Status == models.TransactionStatusOverdue && tx.Type == models.TransactionTypeIncome:
			sum.Overdue = sum.Overdue.Add(amount)
		}
	}
	sum.Balance = sum.Income.Sub(sum.Expenses)
	return sum
}
