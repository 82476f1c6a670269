package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	appContext "github.com/celerysoft/scholar-tool-manager/internal/app/context"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/service"
)

type (
	TemplatesHandler struct {
		templateService service.TemplateService
		contextTimeout  time.Duration
	}

	//easyjson:json
	TemplateDto struct {
		UUID              string  `json:"uuid"`
		Title             string  `json:"title"`
		Subtitle          string  `json:"subtitle"`
		Description       string  `json:"description"`
		Price             float64 `json:"price"`
		InitializationFee float64 `json:"initialization_fee"`
		Status            string  `json:"status"`
	}
	//easyjson:json
	TemplateDtoSlice []TemplateDto
)

func NewTemplatesHandler(contextTimeoutSec int, templateService service.TemplateService) *TemplatesHandler {
	return &TemplatesHandler{
		templateService: templateService,
		contextTimeout:  time.Duration(contextTimeoutSec) * time.Second,
	}
}

// ListTemplates godoc
// @Summary Browse service templates
// @Tags template
// @Produce json
// @Success 200 {array} TemplateDto "Available service templates"
// @Success 204 "No templates to display"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/templates [get]
func (th *TemplatesHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), th.contextTimeout)
	defer cancel()

	templates, err := th.templateService.ListTemplates(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*templates) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := mapTemplatesToTemplateDtoSlice(templates)
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal response: %w", err))
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

func mapTemplatesToTemplateDtoSlice(slice *[]models.ServiceTemplate) TemplateDtoSlice {
	var responseSlice TemplateDtoSlice
	for _, item := range *slice {
		responseItem := TemplateDto{
			UUID:              item.UUID.String(),
			Title:             item.Title,
			Subtitle:          item.Subtitle,
			Description:       item.Description,
			Price:             item.Price.InexactFloat64(),
			InitializationFee: item.InitializationFee.InexactFloat64(),
			Status:            item.Status.String(),
		}
		responseSlice = append(responseSlice, responseItem)
	}
	return responseSlice
}
