package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/logger"
	"github.com/daphne-i/pantrypal/profile/service"
)

type ProfileHandler struct {
	l   logger.Provider
	svc service.ProfileService
}

func NewProfileHandler(l logger.Provider, conn *connection.Connection) *ProfileHandler {
	svc := service.NewProfileService(l, conn)

	return &ProfileHandler{
		l:   l,
		svc: svc,
	}
}

func (h *ProfileHandler) Get(ctx *gin.Context) error {
	profile, err := h.svc.GetProfile(ctx, ctx.Param("userID"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, profile, http.StatusOK)
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func (h *ProfileHandler) SetTheme(ctx *gin.Context) error {
	var req setThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.svc.SetTheme(ctx, ctx.Param("userID"), req.Theme); err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

// setBudgetRequest distinguishes "clear the budget" (null) from "leave it
// alone" (omitted) by requiring the field to be present.
type setBudgetRequest struct {
	MonthlyBudget *float64 `json:"monthlyBudget"`
}

func (h *ProfileHandler) SetBudget(ctx *gin.Context) error {
	var req setBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.svc.SetBudget(ctx, ctx.Param("userID"), req.MonthlyBudget); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
