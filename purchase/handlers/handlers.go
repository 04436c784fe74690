package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/logger"
	"github.com/daphne-i/pantrypal/purchase/service"
)

type PurchaseHandler struct {
	l   logger.Provider
	svc service.PurchaseService
}

func NewPurchaseHandler(l logger.Provider, conn *connection.Connection) *PurchaseHandler {
	svc := service.NewPurchaseService(l, conn)

	return &PurchaseHandler{
		l:   l,
		svc: svc,
	}
}

func (h *PurchaseHandler) Save(ctx *gin.Context) error {
	var req service.SavePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.UserID = ctx.Param("userID")

	resp, err := h.svc.SavePurchase(ctx, &req)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, resp, http.StatusCreated)
}

func (h *PurchaseHandler) List(ctx *gin.Context) error {
	purchases, err := h.svc.ListPurchases(ctx, ctx.Param("userID"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, purchases, http.StatusOK)
}

func (h *PurchaseHandler) ListByBill(ctx *gin.Context) error {
	purchases, err := h.svc.ListBillPurchases(ctx, ctx.Param("userID"), ctx.Param("billID"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, purchases, http.StatusOK)
}

func (h *PurchaseHandler) Get(ctx *gin.Context) error {
	purchase, err := h.svc.GetPurchase(ctx, ctx.Param("userID"), ctx.Param("purchaseID"))
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, purchase, http.StatusOK)
}

func (h *PurchaseHandler) Update(ctx *gin.Context) error {
	var req service.UpdatePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.UserID = ctx.Param("userID")
	req.PurchaseID = ctx.Param("purchaseID")

	if err := h.svc.UpdatePurchase(ctx, &req); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *PurchaseHandler) Delete(ctx *gin.Context) error {
	if err := h.svc.DeletePurchase(ctx, ctx.Param("userID"), ctx.Param("purchaseID")); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func translateServiceError(err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, fsdal.ErrNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrInvalidPrice),
		errors.As(err, &validationErrs):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
