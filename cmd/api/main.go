package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "employee-loan-service/internal/adapter/http"
	"employee-loan-service/internal/adapter/middleware"
	"employee-loan-service/internal/adapter/repository/mysql"
	"employee-loan-service/internal/config"
	"employee-loan-service/internal/infrastructure/cache"
	"employee-loan-service/internal/infrastructure/db"
	"employee-loan-service/internal/usecase/catalog"
	"employee-loan-service/internal/usecase/ledger"
	"employee-loan-service/internal/usecase/repayment"
	"employee-loan-service/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	if cfg.SeedData {
		if err := db.Seed(gdb); err != nil {
			log.Fatal(err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB, time.Duration(cfg.RedisPingSecs)*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	repays := mysql.NewRepaymentRepository(gdb)
	types := mysql.NewLoanTypeRepository(gdb)
	principals := mysql.NewPrincipalRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	ledgerUC := ledger.NewUsecase(loans, types, repays, uow)
	repaymentUC := repayment.NewUsecase(loans, repays, uow)
	catalogUC := catalog.NewUsecase(types)
	reportUC := report.NewUsecase(loans, repays)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(ledgerUC)
	repayH := httpadp.NewRepaymentHandler(repaymentUC)
	typeH := httpadp.NewLoanTypeHandler(catalogUC)
	reportH := httpadp.NewReportHandler(reportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api",
		middleware.ActorResolver(principals),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)

	api.POST("/loans", loanH.SubmitLoan)
	api.GET("/loans", loanH.ListLoans)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.GET("/my-loans", loanH.MyLoans)
	api.POST("/loans/:loan_id/approve", loanH.ApproveLoan)
	api.POST("/loans/:loan_id/reject", loanH.RejectLoan)
	api.POST("/loans/:loan_id/complete", loanH.CompleteLoan)
	api.DELETE("/loans/:loan_id", loanH.DeleteLoan)

	api.POST("/loans/:loan_id/repayments", repayH.Pay)
	api.GET("/loans/:loan_id/repayments", repayH.ListByLoan)
	api.GET("/repayments", repayH.ListAll)

	api.GET("/loan-types", typeH.List)
	api.POST("/loan-types", typeH.Create)
	api.GET("/loan-types/:type_id", typeH.Get)
	api.PUT("/loan-types/:type_id", typeH.Update)
	api.DELETE("/loan-types/:type_id", typeH.Delete)

	api.GET("/reports/summary", reportH.Summary)
	api.GET("/reports/outstanding", reportH.Outstanding)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
