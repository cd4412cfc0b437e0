// Package settingsdelivery manages delivery layer of the settings singleton.
package settingsdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
	"github.com/ledgerlite/ledgerlite/pkg/web"
)

// Service provides service layer interface needed by settings delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package settingsdelivery
type Service interface {
	Get(ctx context.Context) (domain.Settings, error)
	Set(ctx context.Context, settings domain.Settings) (domain.Settings, error)
}

// Handler facilitates settings delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns settings handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type data struct {
	Settings domain.Settings `json:"settings"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Get handles http request to read the settings.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	settings, err := h.service.Get(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{settings}})
}

type setRequest struct {
	DisplayCurrency string `json:"display_currency" binding:"required,currency"`
	Precision       *int32 `json:"precision" binding:"required,min=0,max=4"`
	Language        string `json:"language" binding:"required"`
	Theme           string `json:"theme" binding:"required,oneof=light dark"`
}

// Set handles http request to overwrite the settings.
func (h *Handler) Set(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req setRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	stored, err := h.service.Set(ctx, domain.Settings{
		DisplayCurrency: req.DisplayCurrency,
		Precision:       *req.Precision,
		Language:        req.Language,
		Theme:           req.Theme,
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{stored}})
}
