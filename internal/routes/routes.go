package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	handler "github.com/AbeerUrRahim/invoice-expense-saas/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	authHandler := handler.NewAuthHandler(db, tokens)
	invoiceHandler := handler.NewInvoiceHandler(db)
	expenseHandler := handler.NewExpenseHandler(db)
	dashboardHandler := handler.NewDashboardHandler(db)
	changeLogHandler := handler.NewChangeLogHandler(db)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes are the only unauthenticated surface
	authGroup := api.Group("/Auth")
	authGroup.POST("/Register", authHandler.Register)
	authGroup.POST("/Login", authHandler.Login)

	protected := api.Group("", auth.Middleware(tokens))

	protected.GET("/Dashboard", dashboardHandler.GetDashboardData)

	invoices := protected.Group("/v1/Invoice")
	{
		invoices.GET("/GetInvoice", invoiceHandler.GetInvoice)
		invoices.GET("/GetInvoiceById/:id", invoiceHandler.GetInvoiceByID)
		invoices.POST("/AddInvoice", invoiceHandler.AddInvoice)
		invoices.PUT("/UpdateInvoice", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/DeleteInvoice/:id", invoiceHandler.DeleteInvoice)
		invoices.GET("/download-csv", invoiceHandler.DownloadCSV)
	}

	expenses := protected.Group("/v1/Expense")
	{
		expenses.GET("/GetExpense", expenseHandler.GetExpense)
		expenses.GET("/GetExpenseById/:id", expenseHandler.GetExpenseByID)
		expenses.POST("/AddExpense", expenseHandler.AddExpense)
		expenses.PUT("/UpdateExpense", expenseHandler.UpdateExpense)
		expenses.DELETE("/DeleteExpense/:id", expenseHandler.DeleteExpense)
	}

	protected.GET("/v1/ChangeLog/:entity/:id", changeLogHandler.GetForEntity)
}
