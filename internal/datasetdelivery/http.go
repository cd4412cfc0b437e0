// Package datasetdelivery manages delivery layer of whole-dataset export and import.
package datasetdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
	"github.com/ledgerlite/ledgerlite/pkg/web"
)

// Service provides service layer interface needed by dataset delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package datasetdelivery
type Service interface {
	Export(ctx context.Context) (domain.Dataset, error)
	Import(ctx context.Context, ds domain.Dataset) error
}

// Handler facilitates dataset delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns dataset handler.
func NewHandler(ds Service) Handler {
	return Handler{service: ds}
}

// Export handles http request to download the whole dataset as one JSON
// document.
func (h *Handler) Export(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	ds, err := h.service.Export(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.Header("Content-Disposition", `attachment; filename="ledger-export.json"`)
	gctx.JSON(http.StatusOK, ds)
}

// Import handles http request to replace the whole dataset. The payload is
// rejected as a whole on the first invariant violation.
func (h *Handler) Import(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var ds domain.Dataset
	if err := gctx.ShouldBindJSON(&ds); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if err := h.service.Import(ctx, ds); err != nil {
		if errors.Is(err, domain.ErrInvalidDataset) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}
