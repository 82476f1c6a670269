package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/repository"
)

type TemplateService interface {
	GetTemplate(ctx context.Context, templateUUID uuid.UUID) (*models.ServiceTemplate, error)
	ListTemplates(ctx context.Context) (*[]models.ServiceTemplate, error)
}

type TemplateServiceImpl struct {
	templateRepo repository.TemplateRepository
	cache        *cache.Cache
}

func NewTemplateService(templateRepo repository.TemplateRepository, defaultExpiration, cleanupInterval time.Duration) *TemplateServiceImpl {
	return &TemplateServiceImpl{
		templateRepo: templateRepo,
		cache:        cache.New(defaultExpiration, cleanupInterval),
	}
}

func (ts *TemplateServiceImpl) GetTemplate(ctx context.Context, templateUUID uuid.UUID) (*models.ServiceTemplate, error) {
	if cached, found := ts.cache.Get(templateUUID.String()); found {
		template := cached.(models.ServiceTemplate)
		return &template, nil
	}
	template, err := ts.templateRepo.GetTemplateByUUID(ctx, templateUUID)
	if err != nil {
		return nil, appErrors.NewNotFound("The service template does not exist")
	}
	ts.cache.Set(templateUUID.String(), *template, cache.DefaultExpiration)
	return template, nil
}

func (ts *TemplateServiceImpl) ListTemplates(ctx context.Context) (*[]models.ServiceTemplate, error) {
	return ts.templateRepo.ListTemplates(ctx)
}
