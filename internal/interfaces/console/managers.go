package console

import (
	"context"
	"text/tabwriter"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
)

func (c *Console) managersMenu(ctx context.Context) error {
	return c.menu(ctx, "Managers", "Volver", []option{
		{"Ver managers", c.listManagers},
		{"Agregar manager", c.addManager},
		{"Activar / desactivar manager", c.toggleManager},
	})
}

func (c *Console) listManagers(ctx context.Context) error {
	list, err := c.deps.ManagerUC.ListManagers(ctx)
	if err != nil {
		return err
	}
	c.printManagers(list)
	return nil
}

func (c *Console) printManagers(list []dto.ManagerResponse) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	c.fprintf(w, "#\tUsuario\tNombre\tEstado\n")
	for i, m := range list {
		status := "activo"
		if !m.IsActive {
			status = "inactivo"
		}
		c.fprintf(w, "%d\t%s\t%s\t%s\n", i+1, m.Username, m.FullName, status)
	}
	_ = w.Flush()
}

func (c *Console) addManager(ctx context.Context) error {
	username, err := c.ask("Usuario: ")
	if err != nil {
		return err
	}
	password, err := c.askSecret("Contraseña: ")
	if err != nil {
		return err
	}
	fullName, err := c.ask("Nombre completo: ")
	if err != nil {
		return err
	}
	m, err := c.deps.ManagerUC.CreateManager(ctx, dto.CreateManagerRequest{
		Username: username, Password: password, FullName: fullName,
	})
	if err != nil {
		return err
	}
	c.printf("Manager creado: %s\n", m.Username)
	return nil
}

// toggleManager invierte el estado; el manager de la sesión no puede desactivarse a sí mismo.
func (c *Console) toggleManager(ctx context.Context) error {
	list, err := c.deps.ManagerUC.ListManagers(ctx)
	if err != nil {
		return err
	}
	c.printManagers(list)
	s, err := c.ask("Número de manager: ")
	if err != nil || s == "" {
		return err
	}
	n, err := parseInt(s, "manager")
	if err != nil {
		return err
	}
	if n < 1 || n > len(list) {
		return domain.NewValidationError("manager", "selección fuera de rango")
	}
	m := list[n-1]
	if err := c.deps.ManagerUC.SetStatus(ctx, c.manager.ID, m.ID, !m.IsActive); err != nil {
		return err
	}
	if m.IsActive {
		c.printf("Manager %s desactivado\n", m.Username)
	} else {
		c.printf("Manager %s activado\n", m.Username)
	}
	return nil
}
