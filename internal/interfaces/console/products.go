package console

import (
	"context"
	"text/tabwriter"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
)

func (c *Console) productsMenu(ctx context.Context) error {
	return c.menu(ctx, "Productos", "Volver", []option{
		{"Ver productos", c.listProducts},
		{"Agregar producto", c.addProduct},
		{"Modificar producto", c.editProduct},
		{"Eliminar producto", c.deleteProduct},
	})
}

func (c *Console) listProducts(ctx context.Context) error {
	list, err := c.deps.ProductUC.List(ctx)
	if err != nil {
		return err
	}
	c.printProducts(list.Items)
	return nil
}

// printProducts tabla numerada; el número es el que se usa para elegir producto.
func (c *Console) printProducts(items []dto.ProductResponse) {
	if len(items) == 0 {
		c.println("No hay productos registrados")
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	c.fprintf(w, "#\tNombre\tPrecio\tStock\tDescripción\n")
	for i, p := range items {
		c.fprintf(w, "%d\t%s\t%s\t%d\t%s\n", i+1, p.Name, c.money(p.Price), p.Quantity, p.Description)
	}
	_ = w.Flush()
}

// pickProduct lista los productos y pide uno por número. Enter vacío devuelve (nil, nil).
func (c *Console) pickProduct(ctx context.Context, label string) (*dto.ProductResponse, error) {
	list, err := c.deps.ProductUC.List(ctx)
	if err != nil {
		return nil, err
	}
	c.printProducts(list.Items)
	if len(list.Items) == 0 {
		return nil, nil
	}
	return c.choose(list.Items, label)
}

func (c *Console) choose(items []dto.ProductResponse, label string) (*dto.ProductResponse, error) {
	s, err := c.ask(label)
	if err != nil || s == "" {
		return nil, err
	}
	n, err := parseIndex(s, len(items))
	if err != nil {
		return nil, err
	}
	return &items[n], nil
}

func (c *Console) addProduct(ctx context.Context) error {
	name, err := c.ask("Nombre: ")
	if err != nil {
		return err
	}
	description, err := c.ask("Descripción: ")
	if err != nil {
		return err
	}
	price, err := c.askDecimal("Precio de venta: ", "price")
	if err != nil {
		return err
	}
	qty, err := c.askInt("Cantidad inicial: ", "quantity")
	if err != nil {
		return err
	}
	p, err := c.deps.ProductUC.Create(ctx, dto.CreateProductRequest{
		Name: name, Description: description, Price: price, Quantity: qty,
	})
	if err != nil {
		return err
	}
	c.printf("Producto creado: %s (%s)\n", p.Name, p.ID)
	return nil
}

// editProduct pide cada campo mostrando el valor actual; Enter lo conserva.
func (c *Console) editProduct(ctx context.Context) error {
	p, err := c.pickProduct(ctx, "Número de producto a modificar: ")
	if err != nil || p == nil {
		return err
	}

	var in dto.UpdateProductRequest
	if s, err := c.ask("Nombre [" + p.Name + "]: "); err != nil {
		return err
	} else if s != "" {
		in.Name = &s
	}
	if s, err := c.ask("Descripción [" + p.Description + "] (- para borrar): "); err != nil {
		return err
	} else if s == "-" {
		empty := ""
		in.Description = &empty
	} else if s != "" {
		in.Description = &s
	}
	if s, err := c.ask("Precio [" + p.Price.StringFixed(2) + "]: "); err != nil {
		return err
	} else if s != "" {
		price, perr := parseDecimal(s, "price")
		if perr != nil {
			return perr
		}
		in.Price = &price
	}
	if s, err := c.ask("Stock [" + itoa(p.Quantity) + "]: "); err != nil {
		return err
	} else if s != "" {
		qty, perr := parseInt(s, "quantity")
		if perr != nil {
			return perr
		}
		in.Quantity = &qty
	}

	if in.Name == nil && in.Description == nil && in.Price == nil && in.Quantity == nil {
		c.println("Sin cambios")
		return nil
	}
	updated, err := c.deps.ProductUC.Update(ctx, p.ID, in)
	if err != nil {
		return err
	}
	c.printf("Producto actualizado: %s\n", updated.Name)
	return nil
}

func (c *Console) deleteProduct(ctx context.Context) error {
	p, err := c.pickProduct(ctx, "Número de producto a eliminar: ")
	if err != nil || p == nil {
		return err
	}
	ok, err := c.confirm("¿Eliminar " + p.Name + "?")
	if err != nil {
		return err
	}
	if !ok {
		c.println("Operación cancelada")
		return nil
	}
	if err := c.deps.ProductUC.Delete(ctx, p.ID); err != nil {
		return err
	}
	c.printf("Producto eliminado: %s\n", p.Name)
	return nil
}

func parseIndex(s string, n int) (int, error) {
	i, err := parseInt(s, "producto")
	if err != nil {
		return 0, err
	}
	if i < 1 || i > n {
		return 0, domain.NewValidationError("producto", "selección fuera de rango")
	}
	return i - 1, nil
}
