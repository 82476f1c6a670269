package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
)

type fakeTemplateRepo struct {
	templates map[uuid.UUID]*models.ServiceTemplate
	gets      int
}

func (f *fakeTemplateRepo) CreateTemplate(ctx context.Context, tx *sqlx.Tx, template *models.ServiceTemplate) error {
	f.templates[template.UUID] = template
	return nil
}

func (f *fakeTemplateRepo) GetTemplateByUUID(ctx context.Context, templateUUID uuid.UUID) (*models.ServiceTemplate, error) {
	f.gets++
	template, ok := f.templates[templateUUID]
	if !ok {
		return nil, fmt.Errorf("template %s not found", templateUUID)
	}
	return template, nil
}

func (f *fakeTemplateRepo) ListTemplates(ctx context.Context) (*[]models.ServiceTemplate, error) {
	templates := make([]models.ServiceTemplate, 0)
	for _, template := range f.templates {
		templates = append(templates, *template)
	}
	return &templates, nil
}

func (f *fakeTemplateRepo) GetDB() *sqlx.DB {
	return nil
}

func TestTemplateServiceImpl_GetTemplate(t *testing.T) {
	template := &models.ServiceTemplate{
		UUID:              uuid.New(),
		Title:             "Monthly Plan",
		Price:             decimal.RequireFromString("50.00"),
		InitializationFee: decimal.RequireFromString("5.00"),
		Status:            models.TemplateValid,
		CreatedAt:         time.Now(),
	}
	repo := &fakeTemplateRepo{templates: map[uuid.UUID]*models.ServiceTemplate{template.UUID: template}}
	service := NewTemplateService(repo, 5*time.Minute, 10*time.Minute)

	got, err := service.GetTemplate(context.Background(), template.UUID)
	require.NoError(t, err, "GetTemplate should not fail")
	assert.Equal(t, template.UUID, got.UUID)
	assert.Equal(t, 1, repo.gets)

	// Second read is served from the cache.
	got, err = service.GetTemplate(context.Background(), template.UUID)
	require.NoError(t, err)
	assert.Equal(t, template.UUID, got.UUID)
	assert.Equal(t, 1, repo.gets, "Repeated reads must hit the cache")

	_, err = service.GetTemplate(context.Background(), uuid.New())
	require.Error(t, err, "Unknown template should fail")
	assert.True(t, appErrors.IsKind(err, http.StatusNotFound), "Unexpected failure kind: %v", err)
}

func TestTemplateServiceImpl_ListTemplates(t *testing.T) {
	template := &models.ServiceTemplate{
		UUID:   uuid.New(),
		Title:  "Monthly Plan",
		Status: models.TemplateValid,
	}
	repo := &fakeTemplateRepo{templates: map[uuid.UUID]*models.ServiceTemplate{template.UUID: template}}
	service := NewTemplateService(repo, 5*time.Minute, 10*time.Minute)

	templates, err := service.ListTemplates(context.Background())
	require.NoError(t, err, "ListTemplates should not fail")
	assert.Len(t, *templates, 1)
}
