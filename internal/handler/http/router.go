package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/serviceportals/ops-backend-go/internal/domain/employee"
	"github.com/serviceportals/ops-backend-go/internal/handler/http/middleware"
	"github.com/serviceportals/ops-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	WorkOrder    WorkOrderHandler
	Notification NotificationHandler
	Employee     EmployeeHandler
	Customer     CustomerHandler
	Ticket       TicketHandler
	Leave        LeaveHandler
	Advance      AdvanceHandler
	Payroll      PayrollHandler
	Report       ReportHandler
	Asset        AssetHandler
	Schedule     ScheduleHandler
	Master       MasterHandler
	Rating       RatingHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ops-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin", h.Auth.AdminLogin)
			r.Post("/employee", h.Auth.EmployeeLogin)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)

			r.Route("/customer", func(r chi.Router) {
				r.Post("/login", h.Auth.CustomerLogin)
				r.Post("/forgot-password", h.Auth.ForgotPassword)
				r.Post("/reset-password", h.Auth.ResetPassword)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			// Public login name picker.
			r.Get("/public", h.Employee.ListPublic)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.With(middleware.RequireRole(jwt.RoleAdmin, jwt.RoleEmployee)).
					Patch("/{id}/status", h.Employee.UpdateStatus)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})
		})

		r.Route("/ratings", func(r chi.Router) {
			// Public tokenized rating submission.
			r.Post("/{token}", h.Rating.Submit)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Use(middleware.RequireAdmin)

				r.Get("/", h.Rating.List)
				r.Post("/link", h.Rating.CreateLink)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/work-orders", func(r chi.Router) {
				r.Get("/", h.WorkOrder.List)
				r.Get("/{id}", h.WorkOrder.Get)
				r.Post("/{id}/submit", h.WorkOrder.Submit)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.WorkOrder.Create)
					r.Put("/{id}", h.WorkOrder.Update)
					r.Delete("/{id}", h.WorkOrder.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.Feed)
				r.Post("/{id}/read", h.Notification.MarkRead)
				r.Post("/read-all", h.Notification.MarkAllRead)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Use(middleware.RequireRole(jwt.RoleAdmin, jwt.RoleEmployee))
				r.Use(middleware.RequireFeature(employee.FeatureCustomers))
				r.Get("/", h.Customer.List)
				r.Get("/{id}", h.Customer.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Customer.Create)
					r.Put("/{id}", h.Customer.Update)
					r.Delete("/{id}", h.Customer.Delete)
				})
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Get("/", h.Ticket.List)
				r.Post("/", h.Ticket.Create)
				r.Get("/{id}", h.Ticket.Get)
				r.Get("/{id}/comments", h.Ticket.ListComments)
				r.Post("/{id}/comments", h.Ticket.AddComment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(jwt.RoleAdmin, jwt.RoleEmployee))
					r.Use(middleware.RequireFeature(employee.FeatureTickets))
					r.Put("/{id}", h.Ticket.Update)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", h.Ticket.Delete)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Use(middleware.RequireRole(jwt.RoleAdmin, jwt.RoleEmployee))
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Get("/{id}", h.Leave.Get)
				r.Delete("/{id}", h.Leave.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/review", h.Leave.Review)
				})
			})

			r.Route("/advance-salary", func(r chi.Router) {
				r.Use(middleware.RequireRole(jwt.RoleAdmin, jwt.RoleEmployee))
				r.Get("/", h.Advance.List)
				r.Post("/", h.Advance.Create)
				r.Get("/{id}", h.Advance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/review", h.Advance.Review)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireRole(jwt.RoleAdmin, jwt.RoleEmployee))
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.Get)
				r.Post("/{id}/sign", h.Payroll.Sign)
				r.Get("/{id}/slip", h.Payroll.Slip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Payroll.Generate)
					r.Get("/export", h.Report.PayrollExport)
					r.Post("/{id}/request-signature", h.Payroll.RequestSignature)
					r.Post("/{id}/complete", h.Payroll.Complete)
					r.Delete("/{id}", h.Payroll.Delete)
				})
			})

			r.Route("/assets", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Asset.List)
				r.Post("/", h.Asset.Create)
				r.Get("/{id}", h.Asset.Get)
				r.Put("/{id}", h.Asset.Update)
				r.Delete("/{id}", h.Asset.Delete)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Use(middleware.RequireRole(jwt.RoleAdmin, jwt.RoleEmployee))
				r.Get("/", h.Schedule.ListByDate)
				r.Get("/employee/{employeeID}", h.Schedule.ListByEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Schedule.Create)
					r.Put("/{id}", h.Schedule.Update)
					r.Delete("/{id}", h.Schedule.Delete)
				})
			})

			r.Route("/service-types", func(r chi.Router) {
				r.Get("/", h.Master.ListServiceTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateServiceType)
					r.Put("/{id}", h.Master.UpdateServiceType)
					r.Delete("/{id}", h.Master.DeleteServiceType)
				})
			})

			r.Route("/advertisements", func(r chi.Router) {
				r.Get("/", h.Master.ListAdvertisements)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Master.CreateAdvertisement)
					r.Put("/{id}", h.Master.UpdateAdvertisement)
					r.Delete("/{id}", h.Master.DeleteAdvertisement)
				})
			})
		})
	})

	return r
}
