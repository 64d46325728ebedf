package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rustock/internal/domain/inventory"
)

// RestockSuggestion producto con stock bajo y la compra sugerida para llevarlo al nivel ideal.
type RestockSuggestion struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	IdealStock    int             `json:"ideal_stock"`
	SuggestedQty  int             `json:"suggested_qty"`
	AverageCost   decimal.Decimal `json:"average_cost"`   // promedio ponderado de compras; 0 sin historial
	EstimatedCost decimal.Decimal `json:"estimated_cost"` // SuggestedQty × AverageCost
	UnitsSold     int             `json:"units_sold"`
	Priority      int             `json:"priority"` // 1 = más urgente
}

// Replenishment lista los productos con Quantity <= umbral, con la cantidad a comprar para
// llegar a inventory.IdealStock. Orden: más unidades vendidas, mayor faltante, nombre.
func (s *Service) Replenishment(ctx context.Context) ([]RestockSuggestion, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, err
	}

	sold := make(map[string]int)
	for _, sale := range sales {
		for _, it := range sale.Items {
			sold[it.ProductID] += it.Quantity
		}
	}
	// List devuelve más recientes primero; el promedio se acumula en orden cronológico.
	lots := make(map[string][]inventory.Lot)
	for i := len(purchases) - 1; i >= 0; i-- {
		p := purchases[i]
		lots[p.ProductID] = append(lots[p.ProductID], inventory.Lot{Quantity: p.Quantity, UnitCost: p.PurchasePrice})
	}

	ideal := inventory.IdealStock(s.threshold)
	out := make([]RestockSuggestion, 0)
	for _, p := range products {
		if p.Quantity > s.threshold || p.Quantity >= ideal {
			continue
		}
		avg := inventory.AverageCost(lots[p.ID])
		qty := ideal - p.Quantity
		out = append(out, RestockSuggestion{
			ProductID:     p.ID,
			Name:          p.Name,
			Quantity:      p.Quantity,
			IdealStock:    ideal,
			SuggestedQty:  qty,
			AverageCost:   avg.Round(2),
			EstimatedCost: avg.Mul(decimal.NewFromInt(int64(qty))).Round(2),
			UnitsSold:     sold[p.ID],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		if a.SuggestedQty != b.SuggestedQty {
			return a.SuggestedQty > b.SuggestedQty
		}
		return a.Name < b.Name
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
