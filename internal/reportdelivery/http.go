// Package reportdelivery manages delivery layer of reports.
package reportdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/errorspkg"
	"github.com/ledgerlite/ledgerlite/pkg/web"
)

// Service provides service layer interface needed by report delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reportdelivery
type Service interface {
	Build(ctx context.Context, filter domain.TransactionFilter, displayCurrency string) (domain.ReportSummary, error)
}

// SettingsService supplies the decimal precision applied to the response.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// Handler facilitates report delivery layer logic.
type Handler struct {
	service  Service
	settings SettingsService
}

// NewHandler returns report handler.
func NewHandler(rs Service, ss SettingsService) Handler {
	return Handler{service: rs, settings: ss}
}

type data struct {
	Report domain.ReportSummary `json:"report"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type buildRequest struct {
	Currency   string `form:"currency" binding:"omitempty,currency"`
	Type       string `form:"type" binding:"omitempty,oneof=income expense"`
	CategoryID string `form:"category_id"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Search     string `form:"q"`
}

// Build handles http request to aggregate transactions into a report.
func (h *Handler) Build(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req buildRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
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

	summary, err := h.service.Build(ctx, domain.TransactionFilter{
		Type:       req.Type,
		CategoryID: req.CategoryID,
		From:       req.From,
		To:         req.To,
		Search:     req.Search,
	}, req.Currency)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	settings, err := h.settings.Get(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{rounded(summary, settings.Precision)}})
}

// rounded applies the display precision to every monetary value. The core
// itself leaves rounding to this layer.
func rounded(s domain.ReportSummary, precision int32) domain.ReportSummary {
	s.Income = round(s.Income, precision)
	s.Expense = round(s.Expense, precision)
	s.Balance = round(s.Balance, precision)

	for i := range s.ByCategory {
		s.ByCategory[i].Amount = round(s.ByCategory[i].Amount, precision)
	}

	for i := range s.ByDate {
		s.ByDate[i].Income = round(s.ByDate[i].Income, precision)
		s.ByDate[i].Expense = round(s.ByDate[i].Expense, precision)
	}

	return s
}

func round(v float64, precision int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(precision).Float64()
	return f
}
