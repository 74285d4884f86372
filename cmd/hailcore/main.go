package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hailgo/hailcore/internal/pkg/config"
	"github.com/hailgo/hailcore/internal/pkg/database"
	"github.com/hailgo/hailcore/internal/pkg/logger"
	"github.com/hailgo/hailcore/internal/pkg/middleware"
	nsqpkg "github.com/hailgo/hailcore/internal/pkg/nsq"
	"github.com/hailgo/hailcore/internal/utils"
	locationhandler "github.com/hailgo/hailcore/services/location/handler"
	locationrepo "github.com/hailgo/hailcore/services/location/repository"
	locationuc "github.com/hailgo/hailcore/services/location/usecase"
	"github.com/hailgo/hailcore/services/location/worker"
	"github.com/hailgo/hailcore/services/offers"
	"github.com/hailgo/hailcore/services/offers/gateway"
	offershandler "github.com/hailgo/hailcore/services/offers/handler"
	offersrepo "github.com/hailgo/hailcore/services/offers/repository"
	offersuc "github.com/hailgo/hailcore/services/offers/usecase"
	"github.com/hailgo/hailcore/services/rides"
	rideshandler "github.com/hailgo/hailcore/services/rides/handler"
	ridesrepo "github.com/hailgo/hailcore/services/rides/repository"
	ridesuc "github.com/hailgo/hailcore/services/rides/usecase"
)

func main() {
	appName := "hailcore"
	configPath := config.GetEnv("CONFIG_PATH", "config/hailcore.env")
	configs := config.InitConfig(configPath)

	log := logger.NewAppLogger(configs.App)
	log.WithField("app", appName).
		WithField("version", configs.App.Version).
		WithField("environment", configs.App.Environment).
		Info("starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to Redis")
	}
	defer redisClient.Close()

	// Lifecycle events are optional; with NSQ disabled the use cases skip
	// publishing entirely.
	var offerEvents offers.EventGW
	var rideEvents rides.EventGW
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to NSQ")
		}
		defer producer.Stop()
		eventGW := gateway.NewEventGW(producer)
		offerEvents = eventGW
		rideEvents = eventGW
	}

	// Location service: repositories, use case and the drain worker
	locationRepo := locationrepo.NewLocationRepo(configs, redisClient, log)
	trajectoryRepo := locationrepo.NewTrajectoryRepo(postgresClient)
	locationUC := locationuc.NewLocationUC(configs, locationRepo, trajectoryRepo, log)
	locationHandler := locationhandler.NewLocationHandler(locationUC)

	// Offers service. The location use case doubles as its in-process
	// location gateway.
	offerRepo := offersrepo.NewOfferRepo(postgresClient)
	offerCache := offersrepo.NewOfferCache(configs, redisClient, log)
	userRepo := offersrepo.NewUserRepo(postgresClient, redisClient, log)
	notifyGW := gateway.NewNotificationGW(configs)
	paymentGW := gateway.NewPaymentGW(configs)
	offerUC := offersuc.NewOfferUC(configs, offerRepo, offerCache, userRepo, notifyGW, paymentGW, offerEvents, locationUC, log)
	offerHandler := offershandler.NewOfferHandler(offerUC)

	// Rides service
	rideRepo := ridesrepo.NewRideRepo(postgresClient)
	rideUC := ridesuc.NewRideUC(configs, rideRepo, rideEvents, locationUC, log)
	rideHandler := rideshandler.NewRideHandler(rideUC)

	// Trajectory aggregation runs for the lifetime of the process
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	aggregator := worker.NewAggregator(configs, locationRepo, trajectoryRepo, log)
	go aggregator.Run(workerCtx)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Errors that escape the handlers get the same JSON envelope as the
	// domain responses.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.Code == http.StatusNotFound {
				_ = utils.NotFoundResponse(c, "")
				return
			}
			_ = utils.ErrorResponseHandler(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))
			return
		}
		log.WithError(err).Error("unhandled request error")
		_ = utils.InternalServerErrorResponse(c, "")
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "app": appName})
	})

	g := e.Group("/v1", middleware.JWTAuthMiddleware(configs.JWT))
	offerHandler.RegisterRoutes(g)
	rideHandler.RegisterRoutes(g)
	locationHandler.RegisterRoutes(g)

	go func() {
		log.WithField("port", configs.Server.Port).Info("starting server")
		if err := e.Start(fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
