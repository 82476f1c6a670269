package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/logger"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/repository"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userUID *uuid.UUID, templateUUID uuid.UUID, password string, autoRenew bool) (*models.TradeOrder, error)
	CancelOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) error
	PayOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) error
	RenewOrder(ctx context.Context, userUID *uuid.UUID, serviceUUID uuid.UUID) error
	GetOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) (*models.TradeOrder, error)
	GetOrders(ctx context.Context, userUID *uuid.UUID, query repository.OrderListQuery) (*[]repository.OrderWithTitle, int, error)
}

type OrderServiceImpl struct {
	orderRepo       repository.OrderRepository
	snapshotRepo    repository.SnapshotRepository
	templateService TemplateService
	ledgerService   LedgerService
	orderChan       chan models.TradeOrder
	conflictWindow  time.Duration

	// userLocks serializes order lifecycle writes per user: the conflict
	// check before an insert, and the status read before a settlement.
	// Without it two concurrent creates could both observe "no conflict",
	// and two concurrent payments could both observe "open".
	userLocks sync.Map
}

func NewOrderService(orderRepo repository.OrderRepository,
	snapshotRepo repository.SnapshotRepository,
	templateService TemplateService,
	ledgerService LedgerService,
	orderChan chan models.TradeOrder,
	conflictWindow time.Duration) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:       orderRepo,
		snapshotRepo:    snapshotRepo,
		templateService: templateService,
		ledgerService:   ledgerService,
		orderChan:       orderChan,
		conflictWindow:  conflictWindow,
	}
}

func (os *OrderServiceImpl) lockUser(userUID *uuid.UUID) func() {
	v, _ := os.userLocks.LoadOrStore(*userUID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// checkOrderConflict fails with Conflict when the user already has an unpaid
// order for the same template within the window. An order whose snapshot
// cannot be resolved is skipped: that is an inconsistency worth logging, not a
// reason to block all ordering.
func (os *OrderServiceImpl) checkOrderConflict(ctx context.Context, userUID *uuid.UUID, templateUUID uuid.UUID, window time.Duration) error {
	since := time.Now().Add(-window)
	orders, err := os.orderRepo.GetOpenOrdersSince(ctx, userUID, since)
	if err != nil {
		return fmt.Errorf("conflict check: %w", err)
	}
	for _, order := range *orders {
		snapshot, err := os.snapshotRepo.GetSnapshotByOrderUUID(ctx, order.UUID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				logger.Log.Warn("open order has no resolvable snapshot",
					zap.String("order_uuid", order.UUID.String()))
				continue
			}
			return fmt.Errorf("conflict check: %w", err)
		}
		if snapshot.ServiceTemplateUUID == templateUUID {
			return appErrors.NewConflict(
				fmt.Sprintf("An unpaid order for %s already exists, do not submit it again", snapshot.Title))
		}
	}
	return nil
}

func (os *OrderServiceImpl) CreateOrder(ctx context.Context, userUID *uuid.UUID, templateUUID uuid.UUID, password string, autoRenew bool) (*models.TradeOrder, error) {
	unlock := os.lockUser(userUID)
	defer unlock()

	if err := os.checkOrderConflict(ctx, userUID, templateUUID, os.conflictWindow); err != nil {
		return nil, err
	}

	template, err := os.templateService.GetTemplate(ctx, templateUUID)
	if err != nil {
		return nil, err
	}
	if template.Status == models.TemplateSuspended {
		return nil, appErrors.NewForbidden("The service template is suspended and cannot be ordered")
	}

	now := time.Now()
	order := models.TradeOrder{
		UUID:        uuid.New(),
		UserUUID:    *userUID,
		OrderType:   models.OrderTypeConsume,
		Amount:      template.InitializationFee.Add(template.Price),
		Description: fmt.Sprintf("Subscribe scholar service, template UUID: %s", template.UUID),
		Status:      models.OrderInitialization,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	snapshot := models.ServiceSnapshot{
		UUID:                uuid.New(),
		TradeOrderUUID:      order.UUID,
		UserUUID:            *userUID,
		ServiceTemplateUUID: template.UUID,
		ServicePassword:     password,
		AutoRenew:           autoRenew,
		ServiceType:         template.Type,
		Title:               template.Title,
		Subtitle:            template.Subtitle,
		Description:         template.Description,
		Package:             template.Package,
		Price:               template.Price,
		InitializationFee:   template.InitializationFee,
		Status:              models.SnapshotValid,
		CreatedAt:           now,
	}

	tx, err := os.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := os.orderRepo.CreateOrder(ctx, tx, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := os.snapshotRepo.CreateSnapshot(ctx, tx, &snapshot); err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	os.orderChan <- order // hand over to the watcher for expiry tracking
	return &order, nil
}

func (os *OrderServiceImpl) CancelOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) error {
	unlock := os.lockUser(userUID)
	defer unlock()

	order, err := os.orderRepo.GetOrderByUUID(ctx, orderUUID)
	if err != nil {
		return err
	}
	if order.UserUUID != *userUID {
		return appErrors.NewForbidden("Cannot modify another user's order")
	}
	if order.Status == models.OrderCancel {
		return appErrors.NewConflict("Order is already cancelled")
	}
	if !order.Status.Open() {
		return appErrors.NewInvalidRequest("Order has entered the payment flow and cannot be cancelled, request a refund after completing the payment")
	}

	tx, err := os.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := os.orderRepo.UpdateOrderStatus(ctx, tx, order.UUID, models.OrderCancel, time.Now(),
		models.OrderInitialization, models.OrderPaying); err != nil {
		if errors.Is(err, repository.ErrOrderStatusChanged) {
			return appErrors.NewConflict("The order was settled by another request")
		}
		return fmt.Errorf("cancel order: %w", err)
	}
	return tx.Commit()
}

// PayOrder settles an open order from the user's payment account: the balance
// debit, the ledger entry and the status transition to Paid commit as one
// transaction. The transition itself is a compare-and-set from the open
// statuses, so a payment that loses the race with another settlement rolls
// back instead of debiting the account a second time.
func (os *OrderServiceImpl) PayOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) error {
	unlock := os.lockUser(userUID)
	defer unlock()

	order, err := os.orderRepo.GetOrderByUUID(ctx, orderUUID)
	if err != nil {
		return err
	}
	if order.UserUUID != *userUID {
		return appErrors.NewForbidden("Cannot pay another user's order")
	}
	if order.Status == models.OrderPaid {
		return appErrors.NewConflict("Order is already paid")
	}
	if !order.Status.Open() {
		return appErrors.NewInvalidRequest("Order is not payable")
	}

	account, err := os.ledgerService.GetAccount(ctx, userUID)
	if err != nil {
		return err
	}

	tx, err := os.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := os.ledgerService.Apply(ctx, tx, account.UUID, order.Amount.Neg(), models.PurposeConsume); err != nil {
		return err
	}
	if err := os.orderRepo.UpdateOrderStatus(ctx, tx, order.UUID, models.OrderPaid, time.Now(),
		models.OrderInitialization, models.OrderPaying); err != nil {
		if errors.Is(err, repository.ErrOrderStatusChanged) {
			return appErrors.NewConflict("The order was settled by another request")
		}
		return fmt.Errorf("mark order paid: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	order.Status = models.OrderPaid
	os.orderChan <- *order // hand over to the watcher for provisioning
	return nil
}

func (os *OrderServiceImpl) RenewOrder(ctx context.Context, userUID *uuid.UUID, serviceUUID uuid.UUID) error {
	return appErrors.NewServiceUnavailable("Renewal is under construction")
}

func (os *OrderServiceImpl) GetOrder(ctx context.Context, userUID *uuid.UUID, orderUUID uuid.UUID) (*models.TradeOrder, error) {
	order, err := os.orderRepo.GetOrderByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	if order.UserUUID != *userUID {
		return nil, appErrors.NewForbidden("Cannot view another user's order")
	}
	return order, nil
}

func (os *OrderServiceImpl) GetOrders(ctx context.Context, userUID *uuid.UUID, query repository.OrderListQuery) (*[]repository.OrderWithTitle, int, error) {
	count, err := os.orderRepo.CountOrders(ctx, userUID, query)
	if err != nil {
		return nil, 0, err
	}
	orders, err := os.orderRepo.ListOrders(ctx, userUID, query)
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}
