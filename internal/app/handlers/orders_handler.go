package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appContext "github.com/celerysoft/scholar-tool-manager/internal/app/context"
	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/repository"
	"github.com/celerysoft/scholar-tool-manager/internal/app/service"
)

type (
	OrdersHandler struct {
		orderService   service.OrderService
		contextTimeout time.Duration
	}

	//easyjson:json
	CreateOrderRequestDto struct {
		TemplateUUID string `json:"template_uuid"`
		Password     string `json:"password"`
		AutoRenew    bool   `json:"auto_renew"`
	}
	//easyjson:json
	RenewOrderRequestDto struct {
		ServiceUUID string `json:"service_uuid"`
	}
	//easyjson:json
	OrderCreatedDto struct {
		UUID string `json:"uuid"`
	}
	//easyjson:json
	OrderDto struct {
		UUID        string    `json:"uuid"`
		OrderType   string    `json:"order_type"`
		Amount      float64   `json:"amount"`
		Description string    `json:"description"`
		Status      string    `json:"status"`
		Title       *string   `json:"title,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
	//easyjson:json
	OrderListDto struct {
		Orders   []OrderDto `json:"orders"`
		Page     int        `json:"page"`
		PageSize int        `json:"page_size"`
		Total    int        `json:"total"`
	}
)

const defaultPageSize = 10

func NewOrdersHandler(contextTimeoutSec int, orderService service.OrderService) *OrdersHandler {
	return &OrdersHandler{
		orderService:   orderService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateOrder godoc
// @Summary Create a subscription order
// @Description Creates a trade order plus a frozen snapshot of the requested service template.
//
//	A second request for the same template while a prior order is still unpaid inside the
//	conflict window is rejected.
//
// @Tags order
// @Accept json
// @Produce json
// @Param order body CreateOrderRequestDto true "Order Request"
// @Success 201 {object} OrderCreatedDto "The order has been created"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden - the template is suspended"
// @Failure 404 {object} ErrorResponse "Not Found - the template does not exist"
// @Failure 409 {object} ErrorResponse "Conflict - an unpaid order for the template already exists"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders [post]
func (oh *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := CreateOrderRequestDto{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	templateUUID, err := uuid.Parse(request.TemplateUUID)
	if err != nil {
		PrepareError(w, appErrors.NewInvalidRequest("Invalid template_uuid field"))
		return
	}
	if request.Password == "" {
		PrepareError(w, appErrors.NewInvalidRequest("Missing password field"))
		return
	}

	order, err := oh.orderService.CreateOrder(ctx, userUID, templateUUID, request.Password, request.AutoRenew)
	if err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	response := OrderCreatedDto{UUID: order.UUID.String()}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(rawBytes)
}

// GetOrders godoc
// @Summary List the caller's orders
// @Description Returns the caller's orders newest first, with the joined snapshot title.
// @Description Supports equality/inclusion filters on declared order columns plus title, and pagination.
// @Tags order
// @Produce json
// @Success 200 {object} OrderListDto "Orders with details"
// @Failure 400 {object} ErrorResponse "Bad Request - malformed filter or page"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders [get]
func (oh *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	page, pageSize, query, err := parseOrderListQuery(r)
	if err != nil {
		PrepareError(w, err)
		return
	}

	orders, total, err := oh.orderService.GetOrders(ctx, userUID, query)
	if err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	response := OrderListDto{
		Orders:   mapOrdersToOrderDtoSlice(orders),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

// GetOrder godoc
// @Summary Get one order by UUID
// @Tags order
// @Produce json
// @Success 200 {object} OrderDto "Order details"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden - another user's order"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders/{uuid} [get]
func (oh *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	orderUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		PrepareError(w, appErrors.NewInvalidRequest("Invalid order UUID"))
		return
	}

	order, err := oh.orderService.GetOrder(ctx, userUID, orderUUID)
	if err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	response := OrderDto{
		UUID:        order.UUID.String(),
		OrderType:   order.OrderType.String(),
		Amount:      order.Amount.InexactFloat64(),
		Description: order.Description,
		Status:      order.Status.String(),
		CreatedAt:   order.CreatedAt,
	}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

// CancelOrder godoc
// @Summary Cancel an open order
// @Description Only the order's owner may cancel it, and only while it awaits payment.
// @Tags order
// @Produce json
// @Success 200 "The order has been cancelled"
// @Failure 400 {object} ErrorResponse "Bad Request - the order is already paid"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden - another user's order"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 409 {object} ErrorResponse "Conflict - the order is already cancelled"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders/{uuid} [delete]
func (oh *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	orderUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		PrepareError(w, appErrors.NewInvalidRequest("Invalid order UUID"))
		return
	}

	if err := oh.orderService.CancelOrder(ctx, userUID, orderUUID); err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// PayOrder godoc
// @Summary Pay an open order from the payment account
// @Tags order
// @Produce json
// @Success 200 "The order has been paid"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Payment Required - insufficient balance"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 409 {object} ErrorResponse "Conflict - the order is already paid"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/orders/{uuid}/payment [post]
func (oh *OrdersHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	orderUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		PrepareError(w, appErrors.NewInvalidRequest("Invalid order UUID"))
		return
	}

	if err := oh.orderService.PayOrder(ctx, userUID, orderUUID); err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// RenewOrder godoc
// @Summary Renew a subscribed service
// @Description Deliberately unimplemented upstream; always answers Service Unavailable.
// @Tags order
// @Produce json
// @Failure 503 {object} ErrorResponse "Service Unavailable"
// @Security ApiKeyAuth
// @Router /api/orders/renewal [post]
func (oh *OrdersHandler) RenewOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), oh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := RenewOrderRequestDto{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	serviceUUID, err := uuid.Parse(request.ServiceUUID)
	if err != nil {
		PrepareError(w, appErrors.NewInvalidRequest("Invalid service_uuid field"))
		return
	}

	if err := oh.orderService.RenewOrder(ctx, userUID, serviceUUID); err != nil {
		PrepareError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func parseOrderListQuery(r *http.Request) (page int, pageSize int, query repository.OrderListQuery, err error) {
	page = 1
	pageSize = defaultPageSize

	values := r.URL.Query()
	if raw := values.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, query, appErrors.NewInvalidRequest("Invalid page field")
		}
	}
	if raw := values.Get("page_size"); raw != "" {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	query.Limit = pageSize
	query.Offset = (page - 1) * pageSize
	query.Filters = map[string][]any{}

	for key, raw := range values {
		switch key {
		case "page", "page_size":
			continue
		case "title":
			query.Titles = append(query.Titles, raw...)
		case "status", "order_type":
			for _, v := range raw {
				parsed, parseErr := strconv.Atoi(v)
				if parseErr != nil {
					return 0, 0, query, appErrors.NewInvalidRequest(fmt.Sprintf("Invalid %s field", key))
				}
				query.Filters[key] = append(query.Filters[key], parsed)
			}
		case "uuid", "amount":
			for _, v := range raw {
				query.Filters[key] = append(query.Filters[key], v)
			}
		}
	}
	return page, pageSize, query, nil
}

func mapOrdersToOrderDtoSlice(slice *[]repository.OrderWithTitle) []OrderDto {
	responseSlice := make([]OrderDto, 0, len(*slice))
	for _, item := range *slice {
		responseItem := OrderDto{
			UUID:        item.UUID.String(),
			OrderType:   item.OrderType.String(),
			Amount:      item.Amount.InexactFloat64(),
			Description: item.Description,
			Status:      item.Status.String(),
			Title:       item.Title,
			CreatedAt:   item.CreatedAt,
		}
		responseSlice = append(responseSlice, responseItem)
	}
	return responseSlice
}
