package settlementrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const settlementColumns = "id, account_id, receipt_id, telegram_charge_id, amount, fee, settled_at, transfer_id"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save inserts the record and fills its id. It reports false when a record
// with the same receipt already exists.
func (r *Repository) Save(ctx context.Context, s *domain.Settlement) (bool, error) {
	query := `
        INSERT INTO settlements (account_id, receipt_id, telegram_charge_id, amount, fee, settled_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (receipt_id) DO NOTHING
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, s.AccountID, s.ReceiptID, s.TelegramChargeID, s.Amount, s.Fee, s.SettledAt).Scan(&s.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't save settlement", zap.String("receipt_id", s.ReceiptID), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) FindByReceipt(ctx context.Context, receiptID string) (*domain.Settlement, error) {
	query := "SELECT " + settlementColumns + " FROM settlements WHERE receipt_id = $1"
	s, err := scanSettlement(r.db.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find settlement", zap.String("receipt_id", receiptID), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) SetTransferID(ctx context.Context, id int64, transferID string) error {
	query := `
        UPDATE settlements
        SET transfer_id = $1
        WHERE id = $2 AND transfer_id IS NULL
    `
	_, err := r.db.Exec(ctx, query, transferID, id)
	if err != nil {
		zap.L().Error("can't set transfer id", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUnforwarded(ctx context.Context, limit int) ([]domain.Settlement, error) {
	query := "SELECT " + settlementColumns + " FROM settlements WHERE transfer_id IS NULL ORDER BY settled_at ASC LIMIT $1"
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get unforwarded settlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settlements []domain.Settlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			zap.L().Error("can't scan settlement row", zap.Error(err))
			return nil, err
		}
		settlements = append(settlements, *s)
	}
	return settlements, rows.Err()
}

func scanSettlement(row pgx.Row) (*domain.Settlement, error) {
	var s domain.Settlement
	var accountID *int64
	err := row.Scan(&s.ID, &accountID, &s.ReceiptID, &s.TelegramChargeID, &s.Amount, &s.Fee, &s.SettledAt, &s.TransferID)
	if err != nil {
		return nil, err
	}
	if accountID != nil {
		s.AccountID = *accountID
	}
	return &s, nil
}
