package converter

import (
	"context"
	"errors"
	"time"

	"github.com/cheikhn414/currency-converter/model"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Service describes the conversion operations the handlers expose.
type Service interface {
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (model.ConversionResult, error)
	ClearCache()
}

func New(svc Service) *Converter {
	return &Converter{svc: svc}
}

type Converter struct {
	svc Service
}

type errorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Convert godoc
//
//	@Summary		Convert an amount between two currencies
//	@Description	convert using live provider rates, cached up to 30 minutes, with static fallback
//	@Tags			converter
//	@Param			from	query	string	true	"From currency code" example(USD)
//	@Param			to		query	string	true	"To currency code"   example(EUR)
//	@Param			amount	query	number	true	"Amount to convert"  example(100)
//	@Success		200	{object}	model.ConversionResult
//	@Failure		400	{object}	errorResponse
//	@Router			/api/convert [get]
func (c *Converter) Convert(ctx *fiber.Ctx) error {
	from := ctx.Query("from")
	to := ctx.Query("to")
	amountStr := ctx.Query("amount")

	if from == "" || to == "" || amountStr == "" {
		return sendError(ctx, fiber.StatusBadRequest, "missing parameters: from, to, amount are required")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return sendError(ctx, fiber.StatusBadRequest, "invalid amount format: "+amountStr)
	}

	result, err := c.svc.Convert(ctx.UserContext(), from, to, amount)
	if err != nil {
		return sendConversionError(ctx, err)
	}

	return ctx.JSON(result)
}

// ClearCache godoc
//
//	@Summary	Drop all cached exchange rates
//	@Tags		converter
//	@Success	204	{string}	string	""
//	@Router		/api/cache [delete]
func (c *Converter) ClearCache(ctx *fiber.Ctx) error {
	c.svc.ClearCache()
	return ctx.SendStatus(fiber.StatusNoContent)
}

func sendConversionError(ctx *fiber.Ctx, err error) error {
	var perr *model.ProviderError

	switch {
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrUnsupportedCurrency),
		errors.Is(err, model.ErrRateUnavailable):
		return sendError(ctx, fiber.StatusBadRequest, err.Error())

	case errors.As(err, &perr):
		return sendError(ctx, fiber.StatusServiceUnavailable, "exchange rate service temporarily unavailable")

	default:
		log.Error().Err(err).Msg("conversion failed")
		return sendError(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}

func sendError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(errorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}
