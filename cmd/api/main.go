package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"shop-backoffice/internal/client"
	"shop-backoffice/internal/config"
	"shop-backoffice/internal/notify"
	"shop-backoffice/internal/repository"
	"shop-backoffice/internal/server"
	"shop-backoffice/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)

	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	productRepo := repository.NewProductRepository(db)
	shippingRepo := repository.NewShippingOptionRepository(db)

	telegramClient := client.NewTelegramClient(&cfg.Telegram)
	mailClient := client.NewResendClient(&cfg.Email)
	dispatcher := notify.NewAsyncDispatcher(telegramClient, mailClient, cfg.Email.StoreName)

	paymentService := service.NewPaymentService(orderRepo, customerRepo, couponRepo, dispatcher)
	couponService := service.NewCouponService(couponRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, shippingRepo)
	customerService := service.NewCustomerService(customerRepo)
	catalogService := service.NewCatalogService(productRepo, shippingRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		cfg.AdminToken,
		paymentService,
		couponService,
		orderService,
		customerService,
		catalogService,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}

	// let queued notifications drain before exit
	dispatcher.Close()
}
