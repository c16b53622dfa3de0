package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	SalesPersonUC *usecase.SalesPersonUseCase
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	SaleUC        *usecase.SaleUseCase
	AnalyticsUC   AnalyticsService
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleStaff)

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), anyRole)

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/register", adminOnly, authHandler.Register)

	// Users (admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)

	// Salespersons
	spHandler := NewSalesPersonHandler(deps.SalesPersonUC)
	sps := protected.Group("/salespersons")
	sps.Get("/", spHandler.List)
	sps.Get("/:id", spHandler.GetByID)
	sps.Post("/", adminOnly, spHandler.Create)
	sps.Put("/:id", adminOnly, spHandler.Rename)
	sps.Delete("/:id", adminOnly, spHandler.Delete)

	// Customers + follow-ups
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/follow-ups", customerHandler.ListFollowUps)
	customers.Post("/:id/follow-ups", customerHandler.AddFollowUp)
	protected.Put("/follow-ups/:id", customerHandler.UpdateFollowUp)
	protected.Delete("/follow-ups/:id", customerHandler.DeleteFollowUp)

	// Brands + products
	productHandler := NewProductHandler(deps.ProductUC)
	brands := protected.Group("/brands")
	brands.Get("/", productHandler.ListBrands)
	brands.Post("/", productHandler.CreateBrand)
	brands.Delete("/:id", adminOnly, productHandler.DeleteBrand)

	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventory sales
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales := protected.Group("/sales")
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", adminOnly, saleHandler.Delete)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	an := protected.Group("/analytics")
	an.Get("/dashboard", analyticsHandler.GetDashboard)
	an.Get("/daily-report", analyticsHandler.GetDailyReport)
	an.Get("/daily-report/export", analyticsHandler.ExportDailyReport)
	an.Post("/daily-report/archive", adminOnly, analyticsHandler.ArchiveDailyReport)
}
