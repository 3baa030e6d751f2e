package accountrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrAccountNotFound = errors.New("account not found")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
        SELECT id, username, first_name, last_name, drink_count, unit_price,
               last_settled_at, last_settled_amount, lifetime_total, created_at
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	var acc domain.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&acc.ID, &acc.Username, &acc.FirstName, &acc.LastName, &acc.DrinkCount, &acc.UnitPrice,
		&acc.LastSettledAt, &acc.LastSettledAmount, &acc.LifetimeTotal, &acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get account", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

// Create inserts a fresh tab. A concurrent insert for the same id wins silently.
func (r *Repository) Create(ctx context.Context, acc *domain.Account) error {
	query := `
        INSERT INTO accounts (id, username, first_name, last_name, unit_price)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, acc.ID, acc.Username, acc.FirstName, acc.LastName, acc.UnitPrice)
	if err != nil {
		zap.L().Error("can't create account", zap.Int64("id", acc.ID), zap.Error(err))
		return err
	}
	return nil
}

// Update writes every field set in the patch with a single statement.
func (r *Repository) Update(ctx context.Context, id int64, patch domain.AccountPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.DrinkCount != nil {
		set("drink_count", *patch.DrinkCount)
	}
	if patch.UnitPrice != nil {
		set("unit_price", *patch.UnitPrice)
	}
	if patch.LastSettledAt != nil {
		set("last_settled_at", *patch.LastSettledAt)
	}
	if patch.LastSettledAmount != nil {
		set("last_settled_amount", *patch.LastSettledAmount)
	}
	if patch.LifetimeTotal != nil {
		set("lifetime_total", *patch.LifetimeTotal)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE accounts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't update account", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete account", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SumLifetimeTotals(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(lifetime_total), 0)::BIGINT FROM accounts").Scan(&total)
	if err != nil {
		zap.L().Error("can't sum lifetime totals", zap.Error(err))
		return 0, err
	}
	return total, nil
}
