package currency

import (
	"github.com/cheikhn414/currency-converter/model"
	"github.com/gofiber/fiber/v2"
)

type info struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// List godoc
//
//	@Summary	List the supported currencies
//	@Tags		currencies
//	@Success	200	{array}	info
//	@Router		/api/currencies [get]
func List(ctx *fiber.Ctx) error {
	all := model.All()

	out := make([]info, 0, len(all))
	for _, c := range all {
		out = append(out, info{Code: c.Code, Name: c.Name, Symbol: c.Symbol})
	}

	return ctx.JSON(out)
}
