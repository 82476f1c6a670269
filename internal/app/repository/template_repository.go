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

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, tx *sqlx.Tx, template *models.ServiceTemplate) error
	GetTemplateByUUID(ctx context.Context, templateUUID uuid.UUID) (*models.ServiceTemplate, error)
	ListTemplates(ctx context.Context) (*[]models.ServiceTemplate, error)
	GetDB() *sqlx.DB
}

type TemplateRepositoryImpl struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) *TemplateRepositoryImpl {
	return &TemplateRepositoryImpl{db: db}
}

func (tr *TemplateRepositoryImpl) CreateTemplate(ctx context.Context, tx *sqlx.Tx, template *models.ServiceTemplate) error {
	query := `INSERT INTO service_templates (uuid, type, title, subtitle, description, package,
				price, initialization_fee, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, template.UUID, template.Type, template.Title, template.Subtitle,
		template.Description, template.Package, template.Price, template.InitializationFee,
		template.Status, template.CreatedAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (tr *TemplateRepositoryImpl) GetTemplateByUUID(ctx context.Context, templateUUID uuid.UUID) (*models.ServiceTemplate, error) {
	query := `SELECT * FROM service_templates WHERE uuid = $1 AND status != $2;`
	template := models.ServiceTemplate{}
	err := tr.db.GetContext(ctx, &template, query, templateUUID, models.TemplateDeleted)
	if err != nil {
		return nil, fmt.Errorf("get service template: %w", err)
	}
	return &template, nil
}

func (tr *TemplateRepositoryImpl) ListTemplates(ctx context.Context) (*[]models.ServiceTemplate, error) {
	query := `SELECT * FROM service_templates WHERE status != $1 order by created_at;`
	templates := make([]models.ServiceTemplate, 0)
	err := tr.db.SelectContext(ctx, &templates, query, models.TemplateDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &templates, nil
		}
		return nil, fmt.Errorf("read service templates: %w", err)
	}
	return &templates, nil
}

func (tr *TemplateRepositoryImpl) GetDB() *sqlx.DB {
	return tr.db
}
