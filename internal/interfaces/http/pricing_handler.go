package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/costo-promedio/internal/application/dto"
	"github.com/jhoicas/costo-promedio/internal/application/pricing"
	"github.com/jhoicas/costo-promedio/internal/domain"
)

// PricingHandler expone el cálculo de precio promedio ponderado.
type PricingHandler struct {
	uc *pricing.PriceAveragerUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.PriceAveragerUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// GetAverage godoc
// @Summary      Precio promedio ponderado
// @Tags         pricing
// @Produce      json
// @Param        unit_price       query  string  true  "Precio por unidad de la compra"
// @Param        purchase_amount  query  string  true  "Monto total de la compra"
// @Success      200  {object}  dto.AveragePriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/pricing/average [get]
func (h *PricingHandler) GetAverage(c *fiber.Ctx) error {
	var args []string
	for _, key := range []string{"unit_price", "purchase_amount"} {
		v := c.Query(key)
		if v == "" {
			break
		}
		args = append(args, v)
	}
	in, err := h.uc.ParseArgs(args)
	if err != nil {
		return writeError(c, err)
	}
	return h.average(c, in)
}

// PostAverage godoc
// @Summary      Precio promedio ponderado (body JSON)
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AveragePriceBody  true  "unit_price, purchase_amount"
// @Success      200  {object}  dto.AveragePriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/pricing/average [post]
func (h *PricingHandler) PostAverage(c *fiber.Ctx) error {
	var body dto.AveragePriceBody
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidNumber))
	}
	if body.UnitPrice == nil || body.PurchaseAmount == nil {
		return writeError(c, fmt.Errorf("%w: unit_price y purchase_amount son obligatorios", domain.ErrMissingArgument))
	}
	return h.average(c, dto.AveragePriceRequest{
		UnitPrice:      *body.UnitPrice,
		PurchaseAmount: *body.PurchaseAmount,
	})
}

func (h *PricingHandler) average(c *fiber.Ctx, in dto.AveragePriceRequest) error {
	out, err := h.uc.Average(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrMissingArgument):
		status, code = fiber.StatusBadRequest, "MISSING_ARGUMENT"
	case errors.Is(err, domain.ErrInvalidNumber):
		status, code = fiber.StatusBadRequest, "INVALID_NUMBER"
	case errors.Is(err, domain.ErrDivisionByZero):
		status, code = fiber.StatusUnprocessableEntity, "DIVISION_BY_ZERO"
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:      code,
		Message:   err.Error(),
		RequestID: GetRequestID(c),
	})
}
