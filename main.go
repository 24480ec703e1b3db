// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"github.com/Instaresz90008/demo-app-sub000/config"
	"github.com/Instaresz90008/demo-app-sub000/cron"
	"github.com/Instaresz90008/demo-app-sub000/database"
	providerRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/provider"
	serviceRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/service"
	templateRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/template"
	timeslotRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/timeslot"
	"github.com/Instaresz90008/demo-app-sub000/handlers"
	"github.com/Instaresz90008/demo-app-sub000/middleware"
	"github.com/Instaresz90008/demo-app-sub000/routes"
	"github.com/Instaresz90008/demo-app-sub000/services/notification"
	"github.com/Instaresz90008/demo-app-sub000/services/onboarding"
	"github.com/Instaresz90008/demo-app-sub000/services/payments"
	"github.com/Instaresz90008/demo-app-sub000/services/serviceflow"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitKVStore()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	tplRepo := templateRepoPkg.NewMongoTemplateRepo()
	tsRepo := timeslotRepoPkg.NewMongoTimeSlotRepo()

	// shared infrastructure.
	kv := utils.NewKVStore(utils.GetKVClient())
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	store := wizard.NewSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	notifier := notification.NewFCMNotifier(provRepo, logger)

	// flow completion handlers.
	serviceCompleter := &serviceflow.Completer{
		Services: svcRepo,
		KV:       kv,
		Payments: payments.NewStripeRegistrar(logger),
		Notifier: notifier,
		Logger:   logger,
	}
	onboardingCompleter := &onboarding.Completer{
		Providers:   provRepo,
		Services:    svcRepo,
		Timeslots:   tsRepo,
		KV:          kv,
		Notifier:    notifier,
		AsynqClient: taskClient,
		Logger:      logger,
	}

	flows := map[string]*wizard.Flow{
		serviceflow.FlowName: serviceflow.NewFlow(serviceCompleter.Complete),
		onboarding.FlowName:  onboarding.NewFlow(onboardingCompleter.Complete),
	}

	// background worker for delayed link generation and welcome sends.
	linkGen := &onboarding.LinkGenerator{
		Sessions: store,
		KV:       kv,
		Logger:   logger,
	}
	cron.InitTaskWorker(linkGen, notifier)

	// Seed the template catalog so a fresh deployment has something to offer.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := tplRepo.Seed(seedCtx, templateRepoPkg.DefaultCatalog()); err != nil {
		logger.Sugar().Warnf("main: failed to seed template catalog: %v", err)
	}
	cancelSeed()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Store:      store,
		Flows:      flows,
		Services:   svcRepo,
		Templates:  tplRepo,
		Timeslots:  tsRepo,
		Notifier:   notifier,
		TaskClient: taskClient,
	}

	routes.RegisterRoutes(router, handlerBundle, provRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
