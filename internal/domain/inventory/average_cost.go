// Package inventory contiene servicios de dominio sobre el stock que no pertenecen a una sola entidad.
package inventory

import "github.com/shopspring/decimal"

// Lot entrada de stock con su costo unitario.
type Lot struct {
	Quantity int
	UnitCost decimal.Decimal
}

// WeightedAverageCost costo promedio ponderado tras una entrada:
// ((stock × costo) + (entrada × costoEntrada)) / (stock + entrada).
// Devuelve cero si el total de unidades no es positivo.
func WeightedAverageCost(stock int, cost decimal.Decimal, incoming int, incomingCost decimal.Decimal) decimal.Decimal {
	total := stock + incoming
	if total <= 0 {
		return decimal.Zero
	}
	num := cost.Mul(decimal.NewFromInt(int64(stock))).
		Add(incomingCost.Mul(decimal.NewFromInt(int64(incoming))))
	return num.Div(decimal.NewFromInt(int64(total)))
}

// AverageCost acumula los lotes en orden con WeightedAverageCost. Sin lotes devuelve cero.
func AverageCost(lots []Lot) decimal.Decimal {
	units, cost := 0, decimal.Zero
	for _, l := range lots {
		if l.Quantity <= 0 {
			continue
		}
		cost = WeightedAverageCost(units, cost, l.Quantity, l.UnitCost)
		units += l.Quantity
	}
	return cost
}

// IdealStock nivel objetivo al reponer: 1.5 × umbral, redondeado hacia arriba.
func IdealStock(threshold int) int {
	if threshold <= 0 {
		return 1
	}
	return (threshold*3 + 1) / 2
}
