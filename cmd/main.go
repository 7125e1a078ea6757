package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/boba-order-service/docs"
	"github.com/SergeyBogomolovv/boba-order-service/internal/app"
	"github.com/SergeyBogomolovv/boba-order-service/internal/config"
	"github.com/SergeyBogomolovv/boba-order-service/internal/handler"
	"github.com/SergeyBogomolovv/boba-order-service/internal/repo"
	"github.com/SergeyBogomolovv/boba-order-service/internal/seed"
	"github.com/SergeyBogomolovv/boba-order-service/internal/service"

	"github.com/joho/godotenv"
)

// @title           Boba Order API
// @version         1.0
// @description     Заказы и управление магазинами
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	shops, err := seed.LoadShops(conf.Shops.SeedFile, time.Now())
	panicIfErr("failed to load shops", err)

	shopRepo, err := repo.NewShopRepo(shops)
	panicIfErr("invalid shop catalog", err)
	orderRepo := repo.NewOrderRepo()
	logger.Info("shop catalog loaded", slog.Int("shops", len(shops)))

	if conf.Admin.Password == "" {
		logger.Warn("ADMIN_PASSWORD is not set, admin login will reject every attempt")
	}

	orderService := service.NewOrderService(logger, orderRepo)
	shopService := service.NewShopService(logger, shopRepo)
	adminService := service.NewAdminService(logger, conf.Admin.Username, conf.Admin.Password)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(
		handler.NewIndexHandler(),
		handler.NewOrderHandler(logger, orderService),
		handler.NewShopHandler(logger, shopService),
		handler.NewAdminHandler(logger, adminService),
	)

	if conf.KafkaEnabled {
		handler.RegisterMetrics()
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
		logger.Info("kafka order intake enabled", slog.String("topic", conf.Kafka.Topic))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("application failed", app.Run(ctx))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
