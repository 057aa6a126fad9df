package dto

import "github.com/shopspring/decimal"

// AveragePriceRequest datos de la compra incremental (CLI o POST /api/pricing/average).
type AveragePriceRequest struct {
	UnitPrice      decimal.Decimal `json:"unit_price"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
}

// AveragePriceResponse precio promedio ponderado con el desglose del cálculo.
type AveragePriceResponse struct {
	UnitPrice          decimal.Decimal `json:"unit_price"`
	PurchaseAmount     decimal.Decimal `json:"purchase_amount"`
	BaseUnitPrice      decimal.Decimal `json:"base_unit_price"`
	BaseQuantity       int64           `json:"base_quantity"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	AdditionalQuantity decimal.Decimal `json:"additional_quantity"`
	TotalQuantity      decimal.Decimal `json:"total_quantity"`
	AveragePrice       string          `json:"average_price"` // siempre con dos decimales
}

// AveragePriceBody body de POST /api/pricing/average; nil = campo ausente.
type AveragePriceBody struct {
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	PurchaseAmount *decimal.Decimal `json:"purchase_amount"`
}
