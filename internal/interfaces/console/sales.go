package console

import (
	"context"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rustock/internal/application/dto"
)

func (c *Console) salesMenu(ctx context.Context) error {
	return c.menu(ctx, "Ventas", "Volver", []option{
		{"Nueva venta", c.newSale},
		{"Historial de ventas", c.salesHistory},
	})
}

// newSale arma las líneas hasta Enter vacío, muestra el resumen y registra la venta al confirmar.
func (c *Console) newSale(ctx context.Context) error {
	list, err := c.deps.ProductUC.List(ctx)
	if err != nil {
		return err
	}
	c.printProducts(list.Items)
	if len(list.Items) == 0 {
		return nil
	}

	var (
		req   dto.CreateSaleRequest
		names []string
		total = decimal.Zero
	)
	for {
		p, err := c.choose(list.Items, "Número de producto (Enter para terminar): ")
		if err != nil {
			return err
		}
		if p == nil {
			break
		}
		qty, err := c.askInt("Cantidad: ", "quantity")
		if err != nil {
			return err
		}
		req.Items = append(req.Items, dto.SaleLineRequest{ProductID: p.ID, Quantity: qty})
		names = append(names, p.Name)
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
		c.printf("Agregado: %d x %s\n", qty, p.Name)
	}
	if len(req.Items) == 0 {
		c.println("Venta cancelada: sin productos")
		return nil
	}

	c.println("\nResumen:")
	for i, line := range req.Items {
		c.printf("  %d x %s\n", line.Quantity, names[i])
	}
	c.printf("Total estimado: %s\n", c.money(total))
	ok, err := c.confirm("¿Confirmar venta?")
	if err != nil {
		return err
	}
	if !ok {
		c.println("Venta cancelada")
		return nil
	}

	sale, err := c.deps.SaleUC.RecordSale(ctx, c.manager.ID, req)
	if err != nil {
		return err
	}
	c.printf("Venta registrada: %s, total %s\n", shortID(sale.ID), c.money(sale.TotalAmount))
	return nil
}

func (c *Console) salesHistory(ctx context.Context) error {
	sales, err := c.deps.SaleUC.List(ctx)
	if err != nil {
		return err
	}
	if len(sales) == 0 {
		c.println("No hay ventas registradas")
		return nil
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	c.fprintf(w, "Venta\tFecha\tProducto\tCant.\tP. unit.\tTotal\n")
	for _, s := range sales {
		for i, it := range s.Items {
			id, date := "", ""
			if i == 0 {
				id, date = shortID(s.ID), s.Timestamp.Local().Format("2006-01-02 15:04")
			}
			c.fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				id, date, it.ProductName, it.Quantity, c.money(it.UnitPrice), c.money(it.TotalPrice))
		}
		c.fprintf(w, "\t\t\t\tTotal venta\t%s\n", c.money(s.TotalAmount))
	}
	return w.Flush()
}
