package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/celerysoft/scholar-tool-manager/internal/app/handlers"
	middlware "github.com/celerysoft/scholar-tool-manager/internal/app/middleware"
)

func NewAppRouter(
	uh *handlers.UserHandler,
	oh *handlers.OrdersHandler,
	ah *handlers.AccountHandler,
	th *handlers.TemplatesHandler,
	am middlware.AuthMiddleware,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlware.RequestLogger)
	r.Use(middlware.ResponseLogger)

	r.Post("/api/user/register", uh.Register)
	r.Post("/api/user/login", uh.Login)

	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)

		r.Get("/api/templates", th.ListTemplates)

		r.Post("/api/orders", oh.CreateOrder)
		r.Get("/api/orders", oh.GetOrders)
		r.Post("/api/orders/renewal", oh.RenewOrder)
		r.Get("/api/orders/{uuid}", oh.GetOrder)
		r.Delete("/api/orders/{uuid}", oh.CancelOrder)
		r.Post("/api/orders/{uuid}/payment", oh.PayOrder)

		r.Get("/api/account/balance", ah.GetBalance)
		r.Post("/api/account/recharge", ah.Recharge)
		r.Get("/api/account/ledger", ah.GetLedger)
	})
	return r
}
