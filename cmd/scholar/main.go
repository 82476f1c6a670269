package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/celerysoft/scholar-tool-manager/internal/app/config"
	"github.com/celerysoft/scholar-tool-manager/internal/app/handlers"
	"github.com/celerysoft/scholar-tool-manager/internal/app/logger"
	middlware "github.com/celerysoft/scholar-tool-manager/internal/app/middleware"
	"github.com/celerysoft/scholar-tool-manager/internal/app/models"
	"github.com/celerysoft/scholar-tool-manager/internal/app/repository"
	"github.com/celerysoft/scholar-tool-manager/internal/app/router"
	"github.com/celerysoft/scholar-tool-manager/internal/app/service"
	"github.com/celerysoft/scholar-tool-manager/internal/app/service/clients"
)

// @title           Swagger Docs for Scholar Tool Manager API
// @version         1.0
// @description     Account and order management backend for the scholar subscription service.
// @description     Users register, recharge their payment accounts and subscribe to service templates through trade orders.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Server run context
	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	c := config.ParseFlags()
	logger.InitLogger(c.LogLevel)

	//setup repositories
	ts := service.NewTokenService(c)
	s := repository.NewDBStorage(c)
	ur := repository.NewUserRepository(s.DBConn)
	ar := repository.NewAccountRepository(s.DBConn)
	lr := repository.NewLedgerRepository(s.DBConn)
	or := repository.NewOrderRepository(s.DBConn)
	sr := repository.NewSnapshotRepository(s.DBConn)
	tr := repository.NewTemplateRepository(s.DBConn)

	processOrderChannel := make(chan models.TradeOrder, 100)
	//setup services
	ls := service.NewLedgerService(ar, lr)
	tms := service.NewTemplateService(tr, 5*time.Minute, 10*time.Minute)
	ors := service.NewOrderService(or, sr, tms, ls, processOrderChannel,
		time.Duration(c.OrderConflictWindowMin)*time.Minute)
	pc := clients.NewProvisionClient(c)
	us := service.NewUserService(ur, ls)

	// setup handlers
	uh := handlers.NewUserHandler(us, ts, c.ContextTimeoutSec)
	oh := handlers.NewOrdersHandler(c.ContextTimeoutSec, ors)
	ah := handlers.NewAccountHandler(c.ContextTimeoutSec, ls)
	th := handlers.NewTemplatesHandler(c.ContextTimeoutSec, tms)

	am := middlware.NewAuthMiddleware(ts, us, c.ContextTimeoutSec)

	r := router.NewAppRouter(uh, oh, ah, th, am)

	// Start the goroutine
	ow := service.NewOrderWatcher(or, pc, processOrderChannel,
		time.Duration(c.OrderPaymentTimeoutMin)*time.Minute, time.Minute)
	go ow.Watch(serverCtx)

	// The HTTP Server
	server := &http.Server{Addr: c.ServerAddr, Handler: r}

	// Listen for syscall signals for process to interrupt/quit
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		// Shutdown signal with grace period of 30 seconds
		shutdownCtx, cancelFunc := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancelFunc()
		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		// Trigger graceful shutdown. The order channel closes only after
		// Shutdown returns, once no in-flight request can still send to it.
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		close(processOrderChannel)
		serverStopCtx()
	}()

	// Run the server
	fmt.Printf("Starting server on port %s...\n", strings.Split(c.ServerAddr, ":")[1])
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	// Wait for server context to be stopped
	<-serverCtx.Done()
}
