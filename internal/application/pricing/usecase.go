package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/costo-promedio/internal/application/dto"
	"github.com/jhoicas/costo-promedio/internal/domain"
	"github.com/jhoicas/costo-promedio/internal/domain/inventory"
	"github.com/jhoicas/costo-promedio/pkg/logger"
)

// PriceAveragerUseCase calcula el precio promedio ponderado de una compra sobre el inventario base.
type PriceAveragerUseCase struct {
	base inventory.BaseInventory
	log  *logger.Logger
}

// NewPriceAveragerUseCase construye el caso de uso.
func NewPriceAveragerUseCase(base inventory.BaseInventory, log *logger.Logger) *PriceAveragerUseCase {
	return &PriceAveragerUseCase{base: base, log: log}
}

// ParseArgs interpreta los argumentos posicionales <precio_unitario> <monto_compra>.
// Los argumentos sobrantes se ignoran.
func (uc *PriceAveragerUseCase) ParseArgs(args []string) (dto.AveragePriceRequest, error) {
	if len(args) < 2 {
		return dto.AveragePriceRequest{}, fmt.Errorf("%w: se esperan 2, se recibieron %d", domain.ErrMissingArgument, len(args))
	}
	if len(args) > 2 {
		uc.log.Debug().Strs("ignorados", args[2:]).Msg("argumentos adicionales ignorados")
	}
	unitPrice, err := ParseNumber("precio unitario", args[0])
	if err != nil {
		return dto.AveragePriceRequest{}, err
	}
	amount, err := ParseNumber("monto de compra", args[1])
	if err != nil {
		return dto.AveragePriceRequest{}, err
	}
	return dto.AveragePriceRequest{UnitPrice: unitPrice, PurchaseAmount: amount}, nil
}

// ParseNumber convierte un literal entero o decimal; field se usa solo en el mensaje de error.
func ParseNumber(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %s vacío", domain.ErrInvalidNumber, field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q", domain.ErrInvalidNumber, field, raw)
	}
	if err := CheckBounds(field, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// Límites de magnitud y precisión aceptados para precio y monto.
const (
	MaxIntegerDigits  = 18
	MaxFractionDigits = 16
)

// CheckBounds rechaza valores con más de MaxIntegerDigits dígitos enteros o más de
// MaxFractionDigits decimales (ej. 1e20000000), que harían crecer sin límite los intermedios.
func CheckBounds(field string, d decimal.Decimal) error {
	if -int64(d.Exponent()) > MaxFractionDigits {
		return fmt.Errorf("%w: %s admite hasta %d decimales", domain.ErrInvalidNumber, field, MaxFractionDigits)
	}
	if int64(d.NumDigits())+int64(d.Exponent()) > MaxIntegerDigits {
		return fmt.Errorf("%w: %s admite hasta %d dígitos enteros", domain.ErrInvalidNumber, field, MaxIntegerDigits)
	}
	return nil
}

// Average ejecuta el cálculo y arma la respuesta con el desglose.
func (uc *PriceAveragerUseCase) Average(ctx context.Context, in dto.AveragePriceRequest) (*dto.AveragePriceResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// El body JSON no pasa por ParseNumber.
	if err := CheckBounds("precio unitario", in.UnitPrice); err != nil {
		return nil, err
	}
	if err := CheckBounds("monto de compra", in.PurchaseAmount); err != nil {
		return nil, err
	}
	b, err := inventory.AveragePrice(uc.base, in.UnitPrice, in.PurchaseAmount)
	if err != nil {
		uc.log.Debug().Err(err).
			Str("unit_price", in.UnitPrice.String()).
			Str("purchase_amount", in.PurchaseAmount.String()).
			Msg("cálculo rechazado")
		return nil, err
	}
	uc.log.Debug().
		Str("unit_price", in.UnitPrice.String()).
		Str("purchase_amount", in.PurchaseAmount.String()).
		Str("total_cost", b.TotalCost.String()).
		Str("total_quantity", b.TotalQuantity.String()).
		Str("average_price", b.String()).
		Msg("precio promedio calculado")

	return &dto.AveragePriceResponse{
		UnitPrice:          in.UnitPrice,
		PurchaseAmount:     in.PurchaseAmount,
		BaseUnitPrice:      uc.base.UnitPrice,
		BaseQuantity:       uc.base.Quantity,
		TotalCost:          b.TotalCost,
		AdditionalQuantity: b.AdditionalQuantity,
		TotalQuantity:      b.TotalQuantity,
		AveragePrice:       b.String(),
	}, nil
}
