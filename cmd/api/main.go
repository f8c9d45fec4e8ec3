package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/serviceportals/ops-backend-go/internal/config"
	appHTTP "github.com/serviceportals/ops-backend-go/internal/handler/http"
	"github.com/serviceportals/ops-backend-go/internal/pkg/cron"
	"github.com/serviceportals/ops-backend-go/internal/pkg/database"
	"github.com/serviceportals/ops-backend-go/internal/pkg/email"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
	"github.com/serviceportals/ops-backend-go/internal/pkg/pdf"
	"github.com/serviceportals/ops-backend-go/internal/pkg/storage"
	"github.com/serviceportals/ops-backend-go/internal/repository/postgresql"
	advanceService "github.com/serviceportals/ops-backend-go/internal/service/advance"
	assetService "github.com/serviceportals/ops-backend-go/internal/service/asset"
	authService "github.com/serviceportals/ops-backend-go/internal/service/auth"
	customerService "github.com/serviceportals/ops-backend-go/internal/service/customer"
	employeeService "github.com/serviceportals/ops-backend-go/internal/service/employee"
	leaveService "github.com/serviceportals/ops-backend-go/internal/service/leave"
	masterService "github.com/serviceportals/ops-backend-go/internal/service/master"
	notificationService "github.com/serviceportals/ops-backend-go/internal/service/notification"
	payrollService "github.com/serviceportals/ops-backend-go/internal/service/payroll"
	ratingService "github.com/serviceportals/ops-backend-go/internal/service/rating"
	reportService "github.com/serviceportals/ops-backend-go/internal/service/report"
	scheduleService "github.com/serviceportals/ops-backend-go/internal/service/schedule"
	ticketService "github.com/serviceportals/ops-backend-go/internal/service/ticket"
	workorderService "github.com/serviceportals/ops-backend-go/internal/service/workorder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	unitRepo := postgresql.NewUnitRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	workOrderRepo := postgresql.NewWorkOrderRepository(db)
	ticketRepo := postgresql.NewTicketRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	assetRepo := postgresql.NewAssetRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	serviceTypeRepo := postgresql.NewServiceTypeRepository(db)
	advertisementRepo := postgresql.NewAdvertisementRepository(db)
	ratingRepo := postgresql.NewRatingRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	mailer, err := email.NewService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unknown storage type: ", cfg.Storage.Type)
	}

	payslipGenerator := pdf.NewGenerator()

	authSvc := authService.NewAuthService(cfg.Auth, unitRepo, adminRepo, employeeRepo, customerRepo, jwtService, mailer)
	workOrderSvc := workorderService.NewWorkOrderService(workOrderRepo, employeeRepo, customerRepo, notificationRepo, fileStorage, mailer)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, assetRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	customerSvc := customerService.NewCustomerService(customerRepo)
	ticketSvc := ticketService.NewTicketService(ticketRepo, notificationRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notificationRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, notificationRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, unitRepo, fileStorage, payslipGenerator)
	reportSvc := reportService.NewReportService(payrollRepo, employeeRepo)
	assetSvc := assetService.NewAssetService(assetRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	serviceTypeSvc := masterService.NewServiceTypeService(serviceTypeRepo)
	advertisementSvc := masterService.NewAdvertisementService(advertisementRepo)
	ratingSvc := ratingService.NewRatingService(ratingRepo, workOrderRepo)

	scheduler := cron.NewScheduler()
	assetDateJob := cron.NewAssetDateJob(assetRepo, notificationRepo)
	scheduler.AddJob("asset-date-sweep", 24*time.Hour, assetDateJob.Run)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
		WorkOrder:    appHTTP.NewWorkOrderHandler(workOrderSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Customer:     appHTTP.NewCustomerHandler(customerSvc),
		Ticket:       appHTTP.NewTicketHandler(ticketSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Advance:      appHTTP.NewAdvanceHandler(advanceSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Asset:        appHTTP.NewAssetHandler(assetSvc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc),
		Master:       appHTTP.NewMasterHandler(serviceTypeSvc, advertisementSvc),
		Rating:       appHTTP.NewRatingHandler(ratingSvc),
	}

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown: ", err)
	}
}
