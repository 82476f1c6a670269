package service

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/celerysoft/scholar-tool-manager/internal/app/logger"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/repository"
	"github.com/celerysoft/scholar-tool-manager/internal/app/service/clients"
)

// OrderWatcher tracks open orders and settles their aftermath: an order that
// stays unpaid past the payment window is cancelled, a paid order triggers the
// opaque provisioning call.
type OrderWatcher interface {
	Watch(ctx context.Context)
}

type OrderWatcherImpl struct {
	orderRepo       repository.OrderRepository
	provisionClient clients.ProvisionClient
	pending         *cache.Cache
	orderChan       chan models.TradeOrder
}

func NewOrderWatcher(orderRepo repository.OrderRepository,
	provisionClient clients.ProvisionClient,
	orderChan chan models.TradeOrder,
	paymentTimeout, cleanupInterval time.Duration) *OrderWatcherImpl {
	w := &OrderWatcherImpl{
		orderRepo:       orderRepo,
		provisionClient: provisionClient,
		orderChan:       orderChan,
	}
	c := cache.New(paymentTimeout, cleanupInterval)
	c.OnEvicted(func(key string, value interface{}) {
		order, ok := value.(models.TradeOrder)
		if !ok {
			return
		}
		w.expireOrder(&order)
	})
	w.pending = c
	w.enqueueOpenOrders()
	return w
}

// enqueueOpenOrders reloads orders that were still open when the process last
// stopped, so their payment window keeps being enforced.
func (w *OrderWatcherImpl) enqueueOpenOrders() {
	logger.Log.Info("start tracking open orders")
	total, err := w.orderRepo.CountOpenOrders()
	if err != nil {
		logger.Log.Error("failed to count open orders", zap.Error(err))
		return
	}
	const limit = 20
	for offset := 0; offset < total; offset += limit {
		orders, err := w.orderRepo.GetOpenOrders(limit, offset)
		if err != nil {
			logger.Log.Error("failed to load open orders", zap.Error(err))
			return
		}
		for _, order := range *orders {
			w.track(&order)
		}
	}
	logger.Log.Info("tracking open orders", zap.Int("total_orders", total))
}

func (w *OrderWatcherImpl) track(order *models.TradeOrder) {
	err := w.pending.Add(order.UUID.String(), *order, cache.DefaultExpiration)
	if err != nil {
		logger.Log.Debug("order already tracked", zap.String("order_uuid", order.UUID.String()))
	}
}

func (w *OrderWatcherImpl) Watch(ctx context.Context) {
	for {
		select {
		case order, ok := <-w.orderChan:
			if !ok {
				return
			}
			switch {
			case order.Status == models.OrderPaid:
				w.pending.Delete(order.UUID.String())
				if err := w.provisionClient.ActivateService(order.UserUUID, order.UUID); err != nil {
					logger.Log.Error("provision call failed",
						zap.String("order_uuid", order.UUID.String()), zap.Error(err))
				}
			case order.Status.Open():
				w.track(&order)
			}
		case <-ctx.Done():
			return
		}
	}
}

// expireOrder cancels an order whose payment window elapsed. The order is
// re-read first: it may have been paid or cancelled since it was enqueued.
func (w *OrderWatcherImpl) expireOrder(order *models.TradeOrder) {
	ctx := context.Background()

	current, err := w.orderRepo.GetOrderByUUID(ctx, order.UUID)
	if err != nil {
		logger.Log.Error("failed to re-read expiring order",
			zap.String("order_uuid", order.UUID.String()), zap.Error(err))
		return
	}
	if !current.Status.Open() {
		return
	}

	tx, err := w.orderRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Error("failed to begin transaction", zap.Error(err))
		return
	}
	defer tx.Rollback()

	if err := w.orderRepo.UpdateOrderStatus(ctx, tx, current.UUID, models.OrderCancel, time.Now(),
		models.OrderInitialization, models.OrderPaying); err != nil {
		if errors.Is(err, repository.ErrOrderStatusChanged) {
			logger.Log.Info("expiring order was settled concurrently, leaving it",
				zap.String("order_uuid", current.UUID.String()))
			return
		}
		logger.Log.Error("failed to cancel expired order",
			zap.String("order_uuid", current.UUID.String()), zap.Error(err))
		return
	}
	if err := tx.Commit(); err != nil {
		logger.Log.Error("failed to commit cancellation", zap.Error(err))
		return
	}
	logger.Log.Info("cancelled expired order", zap.String("order_uuid", current.UUID.String()))
}
