// Package ratedelivery manages delivery layer of the exchange rate table.
package ratedelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/fx"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
	"github.com/ledgerlite/ledgerlite/pkg/web"
)

// Service provides service layer interface needed by rate delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ratedelivery
type Service interface {
	Get(ctx context.Context) (fx.Table, error)
	Merge(ctx context.Context, partial map[string]float64) (fx.Table, error)
}

// Handler facilitates rate delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns rate handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

type data struct {
	Rates fx.Table `json:"rates"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Get handles http request to read the rate table.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rates, err := h.service.Get(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{rates}})
}

type setRequest struct {
	Rates map[string]float64 `json:"rates" binding:"required"`
}

// Set handles http request to merge entries into the rate table. Invalid
// entries are ignored by the clamp policy rather than rejected, and the base
// currency rate cannot be overridden.
func (h *Handler) Set(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req setRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	merged, err := h.service.Merge(ctx, req.Rates)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{merged}})
}
