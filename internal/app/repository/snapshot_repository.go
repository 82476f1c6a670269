package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

type SnapshotRepository interface {
	CreateSnapshot(ctx context.Context, tx *sqlx.Tx, snapshot *models.ServiceSnapshot) error
	GetSnapshotByOrderUUID(ctx context.Context, orderUUID uuid.UUID) (*models.ServiceSnapshot, error)
	GetDB() *sqlx.DB
}

type SnapshotRepositoryImpl struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepositoryImpl {
	return &SnapshotRepositoryImpl{db: db}
}

func (sr *SnapshotRepositoryImpl) CreateSnapshot(ctx context.Context, tx *sqlx.Tx, snapshot *models.ServiceSnapshot) error {
	query := `INSERT INTO service_snapshots (uuid, trade_order_uuid, user_uuid, service_template_uuid,
				service_password, auto_renew, service_type, title, subtitle, description, package,
				price, initialization_fee, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, snapshot.UUID, snapshot.TradeOrderUUID, snapshot.UserUUID,
		snapshot.ServiceTemplateUUID, snapshot.ServicePassword, snapshot.AutoRenew, snapshot.ServiceType,
		snapshot.Title, snapshot.Subtitle, snapshot.Description, snapshot.Package,
		snapshot.Price, snapshot.InitializationFee, snapshot.Status, snapshot.CreatedAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

// GetSnapshotByOrderUUID resolves the snapshot linked to an order, excluding
// logically deleted ones. Absence surfaces as sql.ErrNoRows for the caller to
// decide on.
func (sr *SnapshotRepositoryImpl) GetSnapshotByOrderUUID(ctx context.Context, orderUUID uuid.UUID) (*models.ServiceSnapshot, error) {
	query := `SELECT * FROM service_snapshots WHERE trade_order_uuid = $1 AND status != $2;`
	snapshot := models.ServiceSnapshot{}
	err := sr.db.GetContext(ctx, &snapshot, query, orderUUID, models.SnapshotDeleted)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &snapshot, nil
}

func (sr *SnapshotRepositoryImpl) GetDB() *sqlx.DB {
	return sr.db
}
