package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/logger"
	purchaseDomain "github.com/daphne-i/pantrypal/purchase/domain"
	"github.com/daphne-i/pantrypal/reports/service"
)

type ReportHandler struct {
	l   logger.Provider
	svc service.ReportService
}

func NewReportHandler(l logger.Provider, conn *connection.Connection) *ReportHandler {
	svc := service.NewReportService(l, conn)

	return &ReportHandler{
		l:   l,
		svc: svc,
	}
}

func (h *ReportHandler) Dashboard(ctx *gin.Context) error {
	dashboard, err := h.svc.GetDashboard(ctx, ctx.Param("userID"), time.Now())
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, dashboard, http.StatusOK)
}

func (h *ReportHandler) Trend(ctx *gin.Context) error {
	trend, err := h.svc.GetTrend(ctx, ctx.Param("userID"), time.Now())
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, trend, http.StatusOK)
}

func (h *ReportHandler) Breakdown(ctx *gin.Context) error {
	category := purchaseDomain.Category(ctx.Query("category"))

	breakdown, err := h.svc.GetBreakdown(ctx, ctx.Param("userID"), time.Now(), category, ctx.Query("q"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, breakdown, http.StatusOK)
}

func (h *ReportHandler) ExportCSV(ctx *gin.Context) error {
	data, filename, err := h.svc.ExportCSV(ctx, ctx.Param("userID"), time.Now())
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.RespondDownloadFile(ctx, data, filename)
}
