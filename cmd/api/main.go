package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "fundo-loan-service/internal/adapter/http"
	appmw "fundo-loan-service/internal/adapter/middleware"
	"fundo-loan-service/internal/adapter/repository/mysql"
	"fundo-loan-service/internal/config"
	loanDomain "fundo-loan-service/internal/domain/loan"
	"fundo-loan-service/internal/infrastructure/cache"
	"fundo-loan-service/internal/infrastructure/db"
	loanUC "fundo-loan-service/internal/usecase/loan"
	"fundo-loan-service/pkg/id"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Loan{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := mysql.NewLoanRepository(gdb)
	if cfg.SeedData {
		if err := repo.Seed(context.Background()); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	uc := loanUC.NewUsecase(repo, loanUC.WithPaymentDelay(cfg.PaymentDelay()))
	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}))

	idemp := appmw.Idempotency(rdb, cfg.IdempTTL())

	// routes
	e.GET("/health", h.Health)
	e.GET("/loan", lh.ListLoans)
	e.GET("/loan/:id", lh.GetLoan)
	e.POST("/loan", lh.CreateLoan, idemp)
	e.POST("/loan/:id/payment", lh.MakePayment, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
