package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	backupHandlers "github.com/daphne-i/pantrypal/backup/handlers"
	billHandlers "github.com/daphne-i/pantrypal/bill/handlers"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/mid"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/logger"
	profileHandlers "github.com/daphne-i/pantrypal/profile/handlers"
	purchaseHandlers "github.com/daphne-i/pantrypal/purchase/handlers"
	reportHandlers "github.com/daphne-i/pantrypal/reports/handlers"
	subscriptionHandlers "github.com/daphne-i/pantrypal/subscription/handlers"
	uniqueItemHandlers "github.com/daphne-i/pantrypal/uniqueitem/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	purchases := purchaseHandlers.NewPurchaseHandler(loggerProvider, a.conn)
	bills := billHandlers.NewBillHandler(loggerProvider, a.conn)
	uniqueItems := uniqueItemHandlers.NewUniqueItemHandler(loggerProvider, a.conn)
	profiles := profileHandlers.NewProfileHandler(loggerProvider, a.conn)
	reports := reportHandlers.NewReportHandler(loggerProvider, a.conn)
	backups := backupHandlers.NewBackupHandler(loggerProvider, a.conn)
	subscriptions := subscriptionHandlers.NewSubscriptionHandler(loggerProvider, a.conn)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	apiGroup := web.NewGroup(app, "/api/v1")
	{
		userGroup := apiGroup.NewSubgroup(
			"/users/:userID",
			mid.AuthRequired(),
			mid.OwnerOnly("userID"),
			mid.ValidatePathParamNotEmpty("userID"),
		)
		{
			purchasesGroup := userGroup.NewSubgroup("/purchases")
			{
				purchasesGroup.Get("", purchases.List)
				purchasesGroup.Post("", purchases.Save)
				purchasesGroup.Get("/:purchaseID", purchases.Get, mid.ValidatePathParamNotEmpty("purchaseID"))
				purchasesGroup.Put("/:purchaseID", purchases.Update, mid.ValidatePathParamNotEmpty("purchaseID"))
				purchasesGroup.Delete("/:purchaseID", purchases.Delete, mid.ValidatePathParamNotEmpty("purchaseID"))
			}

			billsGroup := userGroup.NewSubgroup("/bills")
			{
				billsGroup.Get("", bills.List)
				billsGroup.Post("", bills.Create)
				billsGroup.Get("/:billID", bills.Get, mid.ValidatePathParamNotEmpty("billID"))
				billsGroup.Put("/:billID", bills.Update, mid.ValidatePathParamNotEmpty("billID"))
				billsGroup.Delete("/:billID", bills.Delete, mid.ValidatePathParamNotEmpty("billID"))
				billsGroup.Get("/:billID/purchases", purchases.ListByBill, mid.ValidatePathParamNotEmpty("billID"))
			}

			pantryGroup := userGroup.NewSubgroup("/pantry")
			{
				pantryGroup.Get("", uniqueItems.ListPantry)
				pantryGroup.Get("/shopping-list", uniqueItems.ShoppingList)
				pantryGroup.Put("/:itemName/shopping", uniqueItems.Mark, mid.ValidatePathParamNotEmpty("itemName"))
			}

			profileGroup := userGroup.NewSubgroup("/profile")
			{
				profileGroup.Get("", profiles.Get)
				profileGroup.Put("/theme", profiles.SetTheme)
				profileGroup.Put("/budget", profiles.SetBudget)
			}

			reportsGroup := userGroup.NewSubgroup("/reports")
			{
				reportsGroup.Get("/dashboard", reports.Dashboard)
				reportsGroup.Get("/trend", reports.Trend)
				reportsGroup.Get("/breakdown", reports.Breakdown)
				reportsGroup.Get("/export", reports.ExportCSV)
			}

			backupGroup := userGroup.NewSubgroup("/backup")
			{
				backupGroup.Get("/export", backups.Export)
				backupGroup.Post("/import", backups.Import)
			}

			watchGroup := userGroup.NewSubgroup("/watch")
			{
				watchGroup.Get("/purchases", subscriptions.WatchPurchases)
				watchGroup.Get("/bills", subscriptions.WatchBills)
				watchGroup.Get("/pantry", subscriptions.WatchPantry)
				watchGroup.Get("/shopping-list", subscriptions.WatchShoppingList)
				watchGroup.Get("/profile", subscriptions.WatchProfile)
			}
		}
	}

	return app
}
