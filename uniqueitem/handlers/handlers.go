package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/fsdal"
	"github.com/daphne-i/pantrypal/logger"
	"github.com/daphne-i/pantrypal/uniqueitem/service"
)

type UniqueItemHandler struct {
	l   logger.Provider
	svc service.UniqueItemService
}

func NewUniqueItemHandler(l logger.Provider, conn *connection.Connection) *UniqueItemHandler {
	svc := service.NewUniqueItemService(l, conn)

	return &UniqueItemHandler{
		l:   l,
		svc: svc,
	}
}

func (h *UniqueItemHandler) ListPantry(ctx *gin.Context) error {
	items, err := h.svc.ListPantry(ctx, ctx.Param("userID"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, items, http.StatusOK)
}

func (h *UniqueItemHandler) ShoppingList(ctx *gin.Context) error {
	items, err := h.svc.ShoppingList(ctx, ctx.Param("userID"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, items, http.StatusOK)
}

type markRequest struct {
	Marked bool `json:"marked"`
}

func (h *UniqueItemHandler) Mark(ctx *gin.Context) error {
	var req markRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	err := h.svc.MarkForShopping(ctx, ctx.Param("userID"), ctx.Param("itemName"), req.Marked)
	if err != nil {
		if errors.Is(err, fsdal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
