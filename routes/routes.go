package routes

import (
	"github.com/gofiber/fiber/v2"

	"landscape-portal-backend/controllers"
	"landscape-portal-backend/middlewares"
	"landscape-portal-backend/models"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then the per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.RequestTx())

	// Customers
	protected.Post("/customer", controllers.CreateCustomer)
	protected.Get("/customers", controllers.GetCustomers)
	protected.Get("/customer/:id", controllers.GetCustomer)
	protected.Put("/customer/:id", controllers.UpdateCustomer)

	// Properties (landscaping sites)
	protected.Post("/property", controllers.CreateProperty)
	protected.Get("/properties", controllers.GetProperties)
	protected.Get("/property/:id", controllers.GetProperty)
	protected.Put("/property/:id", controllers.UpdateProperty)

	// Plant shop catalog (writes are admin-only)
	protected.Post("/plants", middlewares.RequireRole(models.RoleAdmin), controllers.CreatePlants) // batch create
	protected.Get("/plants", controllers.GetPlants)
	protected.Put("/plants/:id", middlewares.RequireRole(models.RoleAdmin), controllers.UpdatePlant)

	// Plant nurseries the shop buys stock from (writes are admin-only)
	protected.Post("/supplier", middlewares.RequireRole(models.RoleAdmin), controllers.CreateSupplier)
	protected.Get("/suppliers", controllers.GetSuppliers)
	protected.Put("/supplier/:id", middlewares.RequireRole(models.RoleAdmin), controllers.UpdateSupplier)

	// The company's own details, printed on document headers
	protected.Get("/business", controllers.GetBusinessProfile)
	protected.Put("/business", middlewares.RequireRole(models.RoleAdmin), controllers.UpsertBusinessProfile)

	// Appointments
	protected.Post("/appointment", controllers.CreateAppointment)
	protected.Get("/appointments", controllers.GetAppointments)
	protected.Put("/appointment/:id", controllers.UpdateAppointment)

	// Financial documents (quotations / invoices / receipts)
	protected.Post("/documents/preview", controllers.PreviewDocument)
	protected.Post("/document", controllers.CreateDocument)
	protected.Get("/documents", controllers.GetDocuments)
	protected.Get("/document/:id", controllers.GetDocument)
	protected.Put("/documents/:id", controllers.UpdateDocument)
	protected.Put("/documents/:id/finalize", controllers.FinalizeDocument)
	protected.Put("/documents/:id/convert", controllers.ConvertDocument)
	protected.Get("/documents/:id/versions", controllers.GetDocumentVersions)
	protected.Post("/documents/:id/payments", controllers.CreatePayment)
	protected.Get("/documents/:id/payments", controllers.ListPayments)
}
