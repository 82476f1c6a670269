package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

// LedgerRepository appends and reads ledger entries. There is deliberately no
// update or delete: the ledger is append-only.
type LedgerRepository interface {
	CreateEntry(ctx context.Context, tx *sqlx.Tx, entry *models.LedgerEntry) error
	GetEntries(ctx context.Context, accountUUID uuid.UUID) (*[]models.LedgerEntry, error)
	GetDB() *sqlx.DB
}

type LedgerRepositoryImpl struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepositoryImpl {
	return &LedgerRepositoryImpl{db: db}
}

func (lr *LedgerRepositoryImpl) CreateEntry(ctx context.Context, tx *sqlx.Tx, entry *models.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (account_uuid, former_balance, balance, type, purpose_type, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) returning id;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, entry.AccountUUID, entry.FormerBalance, entry.Balance,
		entry.Type, entry.PurposeType, entry.Status, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (lr *LedgerRepositoryImpl) GetEntries(ctx context.Context, accountUUID uuid.UUID) (*[]models.LedgerEntry, error) {
	query := `SELECT * FROM ledger_entries WHERE account_uuid = $1 order by id;`
	entries := make([]models.LedgerEntry, 0)
	err := lr.db.SelectContext(ctx, &entries, query, accountUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &entries, nil
		}
		return nil, fmt.Errorf("read ledger entries: %w", err)
	}
	return &entries, nil
}

func (lr *LedgerRepositoryImpl) GetDB() *sqlx.DB {
	return lr.db
}
