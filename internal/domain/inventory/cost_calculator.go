package inventory

import (
	"fmt"

	"github.com/jhoicas/costo-promedio/internal/domain"
	"github.com/shopspring/decimal"
)

// PriceDecimals cantidad de decimales con que se presenta el precio promedio.
const PriceDecimals int32 = 2

// BaseInventory existencias históricas sobre las que se pondera una compra nueva.
type BaseInventory struct {
	UnitPrice decimal.Decimal
	Quantity  int64
}

// DefaultBaseInventory devuelve el inventario base fijo: 23000 unidades a 28.3.
func DefaultBaseInventory() BaseInventory {
	return BaseInventory{
		UnitPrice: decimal.RequireFromString("28.3"),
		Quantity:  23000,
	}
}

// TotalCost costo acumulado del inventario base.
func (b BaseInventory) TotalCost() decimal.Decimal {
	return b.UnitPrice.Mul(decimal.NewFromInt(b.Quantity))
}

// Breakdown resultado del cálculo con sus valores intermedios.
// Las cantidades son enteras aunque se representen como decimal.
type Breakdown struct {
	TotalCost          decimal.Decimal
	AdditionalQuantity decimal.Decimal
	TotalQuantity      decimal.Decimal
	AveragePrice       decimal.Decimal // ya redondeado a PriceDecimals
}

// String devuelve el precio promedio con exactamente dos decimales.
func (b Breakdown) String() string {
	return FormatPrice(b.AveragePrice)
}

// FormatPrice formatea un precio con PriceDecimals decimales fijos (ej. 28.30).
func FormatPrice(p decimal.Decimal) string {
	return p.StringFixed(PriceDecimals)
}

// AveragePrice implementa el costo promedio ponderado tras una compra (servicio de dominio).
//
//	CostoTotal    = PrecioBase * CantBase + Monto
//	CantAdicional = trunc(Monto / PrecioUnitario)
//	Promedio      = CostoTotal / (CantBase + CantAdicional)
//
// El promedio se redondea a dos decimales, mitad alejándose de cero.
func AveragePrice(base BaseInventory, unitPrice, purchaseAmount decimal.Decimal) (Breakdown, error) {
	if unitPrice.IsZero() {
		return Breakdown{}, fmt.Errorf("%w: precio unitario en cero", domain.ErrDivisionByZero)
	}
	totalCost := base.TotalCost().Add(purchaseAmount)

	// QuoRem con precisión 0 trunca hacia cero sin pasar por DivisionPrecision.
	additional, _ := purchaseAmount.QuoRem(unitPrice, 0)
	totalQty := decimal.NewFromInt(base.Quantity).Add(additional)
	if totalQty.IsZero() {
		return Breakdown{}, fmt.Errorf("%w: cantidad total en cero", domain.ErrDivisionByZero)
	}

	return Breakdown{
		TotalCost:          totalCost,
		AdditionalQuantity: additional,
		TotalQuantity:      totalQty,
		AveragePrice:       totalCost.DivRound(totalQty, PriceDecimals),
	}, nil
}
