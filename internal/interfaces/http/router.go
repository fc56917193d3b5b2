package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/application/report"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	LedgerUC  *ledger.LedgerUseCase
	ReportUC  *report.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ledger: movimientos y edición de grilla
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Post("/movements", ledgerHandler.RecordMovement)
	// La edición masiva salta el historial: solo admin.
	ledgerGroup.Put("/inventory", RequireRole(entity.RoleAdmin), ledgerHandler.BulkUpdate)

	// Reportes (protegido, solo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/inventory/low-stock", reportHandler.LowStock)
	reports.Get("/inventory/export.xlsx", reportHandler.ExportXLSX)
	reports.Get("/movements", reportHandler.Movements)
	reports.Get("/movements/daily", reportHandler.Daily)
	reports.Get("/movements/export", reportHandler.ExportCSV)
	reports.Get("/movements/export.pdf", reportHandler.ExportPDF)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
