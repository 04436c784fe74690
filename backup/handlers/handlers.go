package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daphne-i/pantrypal/backup/service"
	"github.com/daphne-i/pantrypal/framework/connection"
	"github.com/daphne-i/pantrypal/framework/web"
	"github.com/daphne-i/pantrypal/logger"
)

type BackupHandler struct {
	l   logger.Provider
	svc service.BackupService
}

func NewBackupHandler(l logger.Provider, conn *connection.Connection) *BackupHandler {
	svc := service.NewBackupService(l, conn)

	return &BackupHandler{
		l:   l,
		svc: svc,
	}
}

func (h *BackupHandler) Export(ctx *gin.Context) error {
	data, filename, err := h.svc.Export(ctx, ctx.Param("userID"))
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.RespondDownloadFile(ctx, data, filename)
}

func (h *BackupHandler) Import(ctx *gin.Context) error {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.svc.Import(ctx, ctx.Param("userID"), payload); err != nil {
		switch {
		case errors.Is(err, service.ErrMalformedExport):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, service.ErrWrongUser):
			return web.NewRequestError(err, http.StatusForbidden)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
