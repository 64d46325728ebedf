package console

import (
	"context"
	"text/tabwriter"

	"github.com/jhoicas/rustock/internal/application/dto"
)

func (c *Console) purchasesMenu(ctx context.Context) error {
	return c.menu(ctx, "Compras", "Volver", []option{
		{"Reponer producto existente", c.restock},
		{"Comprar producto nuevo", c.purchaseNewProduct},
		{"Historial de compras", c.purchaseHistory},
	})
}

func (c *Console) restock(ctx context.Context) error {
	p, err := c.pickProduct(ctx, "Número de producto: ")
	if err != nil || p == nil {
		return err
	}
	qty, err := c.askInt("Cantidad comprada: ", "quantity")
	if err != nil {
		return err
	}
	price, err := c.askDecimal("Precio de compra unitario: ", "purchase_price")
	if err != nil {
		return err
	}
	out, err := c.deps.PurchaseUC.Restock(ctx, c.manager.ID, dto.RestockRequest{
		ProductID: p.ID, Quantity: qty, PurchasePrice: price,
	})
	if err != nil {
		return err
	}
	c.printf("Compra registrada: %d x %s, costo total %s. Stock: %d\n",
		out.Quantity, out.ProductName, c.money(out.TotalCost), p.Quantity+out.Quantity)
	return nil
}

func (c *Console) purchaseNewProduct(ctx context.Context) error {
	name, err := c.ask("Nombre: ")
	if err != nil {
		return err
	}
	description, err := c.ask("Descripción: ")
	if err != nil {
		return err
	}
	selling, err := c.askDecimal("Precio de venta: ", "selling_price")
	if err != nil {
		return err
	}
	qty, err := c.askInt("Cantidad comprada: ", "quantity")
	if err != nil {
		return err
	}
	price, err := c.askDecimal("Precio de compra unitario: ", "purchase_price")
	if err != nil {
		return err
	}
	out, err := c.deps.PurchaseUC.PurchaseNewProduct(ctx, c.manager.ID, dto.NewProductPurchaseRequest{
		Name: name, Description: description, SellingPrice: selling, Quantity: qty, PurchasePrice: price,
	})
	if err != nil {
		return err
	}
	c.printf("Producto %s creado con %d unidades, costo total %s\n", out.ProductName, out.Quantity, c.money(out.TotalCost))
	return nil
}

func (c *Console) purchaseHistory(ctx context.Context) error {
	purchases, err := c.deps.PurchaseUC.List(ctx)
	if err != nil {
		return err
	}
	if len(purchases) == 0 {
		c.println("No hay compras registradas")
		return nil
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	c.fprintf(w, "Fecha\tProducto\tCant.\tP. compra\tCosto total\n")
	for _, p := range purchases {
		c.fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			p.PurchaseDate.Local().Format("2006-01-02 15:04"), p.ProductName, p.Quantity,
			c.money(p.PurchasePrice), c.money(p.TotalCost))
	}
	return w.Flush()
}
