package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/daphne-i/pantrypal/bill/service"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/logger"
	purchaseService "github.com/daphne-i/pantrypal/purchase/service"
)

type BillHandler struct {
	l   logger.Provider
	svc service.BillService
}

func NewBillHandler(l logger.Provider, conn *connection.Connection) *BillHandler {
	svc := service.NewBillService(l, conn)

	return &BillHandler{
		l:   l,
		svc: svc,
	}
}

func (h *BillHandler) Create(ctx *gin.Context) error {
	var req service.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.UserID = ctx.Param("userID")

	resp, err := h.svc.CreateBill(ctx, &req)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, resp, http.StatusCreated)
}

func (h *BillHandler) List(ctx *gin.Context) error {
	bills, err := h.svc.ListBills(ctx, ctx.Param("userID"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, bills, http.StatusOK)
}

func (h *BillHandler) Get(ctx *gin.Context) error {
	bill, err := h.svc.GetBill(ctx, ctx.Param("userID"), ctx.Param("billID"))
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, bill, http.StatusOK)
}

func (h *BillHandler) Update(ctx *gin.Context) error {
	var req service.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.UserID = ctx.Param("userID")
	req.BillID = ctx.Param("billID")

	if err := h.svc.UpdateBill(ctx, &req); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *BillHandler) Delete(ctx *gin.Context) error {
	if err := h.svc.DeleteBill(ctx, ctx.Param("userID"), ctx.Param("billID")); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func translateServiceError(err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, fsdal.ErrNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidTotal),
		errors.Is(err, purchaseService.ErrEmptyName),
		errors.Is(err, purchaseService.ErrInvalidPrice),
		errors.As(err, &validationErrs):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
