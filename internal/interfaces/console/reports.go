package console

import (
	"context"
	"os"
	"text/tabwriter"

	"github.com/jhoicas/rustock/internal/application/report"
)

const defaultPDFPath = "reporte_rustock.pdf"

func (c *Console) reportsMenu(ctx context.Context) error {
	return c.menu(ctx, "Reportes", "Volver", []option{
		{"Inventario", c.inventoryReport},
		{"Ventas", c.salesReport},
		{"Compras", c.purchasesReport},
		{"Reposición sugerida", c.replenishmentReport},
		{"Exportar resumen PDF", c.exportPDF},
	})
}

func (c *Console) inventoryReport(ctx context.Context) error {
	r, err := c.deps.Reports.Inventory(ctx)
	if err != nil {
		return err
	}
	c.println("\n--- Inventario ---")
	c.printLines(r.Products)
	c.printf("Productos: %d  Unidades: %d  Valor: %s\n", r.TotalProducts, r.TotalUnits, c.money(r.StockValue))
	if len(r.LowStock) > 0 {
		c.printf("\nStock bajo (<= %d):\n", r.Threshold)
		c.printLines(r.LowStock)
	}
	return nil
}

func (c *Console) printLines(lines []report.ProductLine) {
	if len(lines) == 0 {
		c.println("Sin productos")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	c.fprintf(w, "Nombre\tStock\tPrecio\tValor\n")
	for _, l := range lines {
		c.fprintf(w, "%s\t%d\t%s\t%s\n", l.Name, l.Quantity, c.money(l.Price), c.money(l.Value))
	}
	_ = w.Flush()
}

func (c *Console) salesReport(ctx context.Context) error {
	r, err := c.deps.Reports.Sales(ctx)
	if err != nil {
		return err
	}
	c.println("\n--- Ventas ---")
	c.printf("Ventas: %d  Unidades: %d  Ingresos: %s\n", r.Count, r.Units, c.money(r.Revenue))
	return nil
}

func (c *Console) purchasesReport(ctx context.Context) error {
	r, err := c.deps.Reports.Purchases(ctx)
	if err != nil {
		return err
	}
	c.println("\n--- Compras ---")
	c.printf("Compras: %d  Unidades: %d  Costo total: %s\n", r.Count, r.Units, c.money(r.TotalCost))
	return nil
}

func (c *Console) replenishmentReport(ctx context.Context) error {
	list, err := c.deps.Reports.Replenishment(ctx)
	if err != nil {
		return err
	}
	c.println("\n--- Reposición sugerida ---")
	if len(list) == 0 {
		c.println("Ningún producto necesita reposición")
		return nil
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	c.fprintf(w, "#\tProducto\tStock\tComprar\tCosto prom.\tCosto est.\tVendidas\n")
	for _, s := range list {
		c.fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\t%d\n", s.Priority, s.Name, s.Quantity, s.SuggestedQty,
			c.money(s.AverageCost), c.money(s.EstimatedCost), s.UnitsSold)
	}
	return w.Flush()
}

func (c *Console) exportPDF(ctx context.Context) error {
	path, err := c.ask("Archivo [" + defaultPDFPath + "]: ")
	if err != nil {
		return err
	}
	if path == "" {
		path = defaultPDFPath
	}
	doc, err := c.deps.Reports.SummaryPDF(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}
	c.deps.Log.Info().Str("path", path).Int("bytes", len(doc)).Msg("reporte PDF exportado")
	c.printf("Reporte guardado en %s\n", path)
	return nil
}
