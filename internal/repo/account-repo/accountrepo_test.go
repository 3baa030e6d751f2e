package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{
	"id", "username", "first_name", "last_name", "drink_count", "unit_price",
	"last_settled_at", "last_settled_amount", "lifetime_total", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC)
	settledAt := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM accounts WHERE id = $1 FOR UPDATE")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Account found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows(accountColumns).
						AddRow(int64(42), "anna", "Anna", "Muster", int64(5), int64(150), &settledAt, int64(750), int64(1500), createdAt))
			},
			result: &domain.Account{
				ID: 42, Username: "anna", FirstName: "Anna", LastName: "Muster", DrinkCount: 5, UnitPrice: 150,
				LastSettledAt: &settledAt, LastSettledAmount: 750, LifetimeTotal: 1500, CreatedAt: createdAt,
			},
		},
		{
			name: "Never settled",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows(accountColumns).
						AddRow(int64(42), "", "Anna", "", int64(0), int64(150), nil, int64(0), int64(0), createdAt))
			},
			result: &domain.Account{ID: 42, FirstName: "Anna", UnitPrice: 150, CreatedAt: createdAt},
		},
		{
			name: "Account not found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(42)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(42)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), 42)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO accounts (id, username, first_name, last_name, unit_price) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING")
	acc := &domain.Account{ID: 42, Username: "anna", FirstName: "Anna", UnitPrice: 150}

	mock.ExpectExec(query).
		WithArgs(int64(42), "anna", "Anna", "", int64(150)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), acc))

	mock.ExpectExec(query).
		WithArgs(int64(42), "anna", "Anna", "", int64(150)).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Create(context.Background(), acc))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	settledAt := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		patch     domain.AccountPatch
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr error
	}{
		{
			name:  "Single field",
			patch: domain.OrderPatch(domain.Account{DrinkCount: 4}),
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET drink_count = $1 WHERE id = $2")).
					WithArgs(int64(5), int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "Settlement writes all fields at once",
			patch: domain.SettlementPatch(domain.Account{LifetimeTotal: 300}, 750, settledAt),
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET drink_count = $1, last_settled_at = $2, last_settled_amount = $3, lifetime_total = $4 WHERE id = $5")).
					WithArgs(int64(0), settledAt, int64(750), int64(1050), int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:      "Empty patch is a no-op",
			patch:     domain.AccountPatch{},
			mockSetup: func(mock pgxmock.PgxPoolIface) {},
		},
		{
			name:  "Missing row",
			patch: domain.RepricePatch(100),
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET unit_price = $1 WHERE id = $2")).
					WithArgs(int64(100), int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			err := repo.Update(context.Background(), 42, tt.patch)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM accounts WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumLifetimeTotals(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT COALESCE(SUM(lifetime_total), 0)::BIGINT FROM accounts")

	mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(9900)))
	total, err := repo.SumLifetimeTotals(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(9900), total)

	mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
	_, err = repo.SumLifetimeTotals(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
