package console_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/internal/application/inventory"
	"github.com/jhoicas/rustock/internal/application/report"
	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/interfaces/console"
	"github.com/jhoicas/rustock/internal/testutil/memstore"
	"github.com/jhoicas/rustock/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const loginOK = "admin\nadmin123\n"

type fakeRenderer struct{}

func (fakeRenderer) RenderSummary(_ context.Context, _ *report.Summary) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

type session struct {
	store *memstore.Store
	admin *entity.Manager
	out   bytes.Buffer
}

func newSession(t *testing.T) *session {
	t.Helper()
	s := &session{store: memstore.New()}
	s.admin = entity.NewManager("admin", "admin123", "Administrador")
	require.NoError(t, s.admin.HashPassword())
	s.store.ManagerRows = append(s.store.ManagerRows, s.admin)
	return s
}

func (s *session) seed(t *testing.T, name, price string, qty int) *entity.Product {
	t.Helper()
	p := entity.NewProduct(name, "", decimal.RequireFromString(price), qty)
	require.NoError(t, s.store.ProductRepo().Create(context.Background(), p))
	return p
}

// run ejecuta la consola con las líneas dadas como entrada.
func (s *session) run(t *testing.T, lines ...string) error {
	t.Helper()
	log := logger.Nop()
	db := s.store
	c := console.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &s.out, console.Deps{
		ProductUC:   inventory.NewProductUseCase(db, db.ProductRepo(), log),
		SaleUC:      inventory.NewSaleUseCase(db, db.ProductRepo(), db.SaleRepo(), log),
		PurchaseUC:  inventory.NewPurchaseUseCase(db, db.PurchaseRepo(), log),
		ManagerUC:   auth.NewManagerUseCase(db.ManagerRepo(), auth.JWTConfig{}, log),
		Reports:     report.NewService(db.ProductRepo(), db.SaleRepo(), db.PurchaseRepo(), fakeRenderer{}, 5),
		MaxAttempts: 3,
		Language:    language.English,
		Log:         log,
	})
	return c.Run(context.Background())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_TresIntentosFallidosDeniegaAcceso(t *testing.T) {
	s := newSession(t)

	err := s.run(t, "admin", "x", "admin", "y", "admin", "z", "admin", "admin123")

	require.ErrorIs(t, err, domain.ErrTooManyAttempts)
	out := s.out.String()
	assert.Contains(t, out, "Intentos restantes: 2")
	assert.Contains(t, out, "Intentos restantes: 1")
	assert.Contains(t, out, "acceso denegado")
	assert.NotContains(t, out, "Bienvenido")
}

func TestRun_LoginTrasUnFalloYSalir(t *testing.T) {
	s := newSession(t)

	err := s.run(t, "admin", "mal", "admin", "admin123", "6")

	require.NoError(t, err)
	assert.Contains(t, s.out.String(), "Intentos restantes: 2")
	assert.Contains(t, s.out.String(), "Bienvenido, Administrador")
}

// La contraseña se compara tal cual, con los espacios de los extremos.
func TestRun_PasswordConEspaciosEnLosExtremos(t *testing.T) {
	s := newSession(t)
	m := entity.NewManager("cajero", " clave ", "Cajero")
	require.NoError(t, m.HashPassword())
	s.store.ManagerRows = append(s.store.ManagerRows, m)

	err := s.run(t, "cajero", "clave", "  cajero ", " clave ", "6")

	require.NoError(t, err)
	assert.Contains(t, s.out.String(), "Intentos restantes: 2")
	assert.Contains(t, s.out.String(), "Bienvenido, Cajero")
}

func TestRun_ManagerInactivoNoInicia(t *testing.T) {
	s := newSession(t)
	s.admin.IsActive = false

	err := s.run(t, "admin", "admin123", "admin", "admin123", "admin", "admin123")

	require.ErrorIs(t, err, domain.ErrTooManyAttempts)
}

func TestRun_FinDeEntradaTerminaSinError(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.run(t))
	require.NoError(t, newSession(t).run(t, "admin", "admin123"))
}

func TestRun_OpcionInvalida(t *testing.T) {
	s := newSession(t)

	require.NoError(t, s.run(t, "admin", "admin123", "9", "abc", "6"))
	assert.Equal(t, 2, strings.Count(s.out.String(), "Opción inválida"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_AgregarYListar(t *testing.T) {
	s := newSession(t)

	err := s.run(t, "admin", "admin123",
		"1", "2", "Widget", "azul", "1234.50", "5",
		"1", "5", "6")
	require.NoError(t, err)

	out := s.out.String()
	assert.Contains(t, out, "Producto creado: Widget")
	assert.Contains(t, out, "$1,234.50")
	require.Len(t, s.store.ProductRows, 1)
	for _, p := range s.store.ProductRows {
		assert.Equal(t, 5, p.Quantity)
		assert.Equal(t, "azul", p.Description)
	}
}

func TestProductos_AgregarInvalidoVuelveAlMenu(t *testing.T) {
	s := newSession(t)

	err := s.run(t, "admin", "admin123",
		"1", "2", "Widget", "", "-3", "5",
		"1", "2", "Widget", "", "abc",
		"5", "6")
	require.NoError(t, err)

	assert.Empty(t, s.store.ProductRows)
	assert.Contains(t, s.out.String(), "price: importe inválido")
}

func TestProductos_ModificarConservaCamposVacios(t *testing.T) {
	s := newSession(t)
	p := s.seed(t, "Widget", "10.00", 5)

	err := s.run(t, "admin", "admin123",
		"1", "3", "1", "", "", "12.50", "",
		"5", "6")
	require.NoError(t, err)

	got := s.store.ProductRows[p.ID]
	assert.Equal(t, "Widget", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, 5, got.Quantity)
	assert.Contains(t, s.out.String(), "Producto actualizado: Widget")
}

func TestProductos_EliminarPideConfirmacion(t *testing.T) {
	s := newSession(t)
	p := s.seed(t, "Widget", "10.00", 5)

	err := s.run(t, "admin", "admin123",
		"1", "4", "1", "n",
		"4", "1", "s",
		"5", "6")
	require.NoError(t, err)

	assert.Contains(t, s.out.String(), "Operación cancelada")
	assert.NotContains(t, s.store.ProductRows, p.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas y compras
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_NuevaVentaDescuentaStock(t *testing.T) {
	s := newSession(t)
	p := s.seed(t, "Widget", "10.00", 5)

	err := s.run(t, "admin", "admin123",
		"2", "1", "1", "3", "", "s",
		"2", "3", "6")
	require.NoError(t, err)

	assert.Equal(t, 2, s.store.Quantity(p.ID))
	require.Len(t, s.store.SaleRows, 1)
	assert.Equal(t, s.admin.ID, s.store.SaleRows[0].ManagerID)
	out := s.out.String()
	assert.Contains(t, out, "Total estimado: $30.00")
	assert.Contains(t, out, "Venta registrada")
}

func TestVentas_StockInsuficienteNoRegistra(t *testing.T) {
	s := newSession(t)
	p := s.seed(t, "Widget", "10.00", 5)

	err := s.run(t, "admin", "admin123",
		"2", "1", "1", "9", "", "s",
		"3", "6")
	require.NoError(t, err)

	assert.Equal(t, 5, s.store.Quantity(p.ID))
	assert.Empty(t, s.store.SaleRows)
	assert.Contains(t, s.out.String(), "stock insuficiente (disponible 5, solicitado 9)")
}

func TestVentas_CancelarNoRegistra(t *testing.T) {
	s := newSession(t)
	p := s.seed(t, "Widget", "10.00", 5)

	err := s.run(t, "admin", "admin123",
		"2", "1", "1", "2", "", "n",
		"1", "",
		"3", "6")
	require.NoError(t, err)

	assert.Equal(t, 5, s.store.Quantity(p.ID))
	assert.Empty(t, s.store.SaleRows)
	assert.Contains(t, s.out.String(), "Venta cancelada: sin productos")
}

func TestCompras_ReponerYProductoNuevo(t *testing.T) {
	s := newSession(t)
	p := s.seed(t, "Widget", "10.00", 5)

	err := s.run(t, "admin", "admin123",
		"3", "1", "1", "4", "6.25",
		"2", "Tornillo", "", "0.50", "100", "0.10",
		"3", "4", "6")
	require.NoError(t, err)

	assert.Equal(t, 9, s.store.Quantity(p.ID))
	require.Len(t, s.store.PurchaseRows, 2)
	assert.Len(t, s.store.ProductRows, 2)
	out := s.out.String()
	assert.Contains(t, out, "costo total $25.00. Stock: 9")
	assert.Contains(t, out, "Producto Tornillo creado con 100 unidades")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes y managers
// ──────────────────────────────────────────────────────────────────────────────

func TestReportes_InventarioYPDF(t *testing.T) {
	s := newSession(t)
	s.seed(t, "Widget", "10.00", 2)
	s.seed(t, "Gadget", "3.00", 50)
	path := filepath.Join(t.TempDir(), "resumen.pdf")

	err := s.run(t, "admin", "admin123",
		"4", "1", "2", "3", "4", "5", path,
		"6", "6")
	require.NoError(t, err)

	out := s.out.String()
	assert.Contains(t, out, "Productos: 2  Unidades: 52  Valor: $170.00")
	assert.Contains(t, out, "Stock bajo (<= 5)")
	assert.Contains(t, out, "Ventas: 0")
	assert.Contains(t, out, "Reporte guardado en "+path)
	assert.Contains(t, out, "Reposición sugerida")
	assert.Regexp(t, `1\s+Widget\s+2\s+6`, out)

	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestManagers_CrearYDesactivar(t *testing.T) {
	s := newSession(t)

	// Lista: más recientes primero, así "ana" queda como #1.
	err := s.run(t, "admin", "admin123",
		"5", "2", "ana", "secreta", "Ana Pérez",
		"3", "1",
		"3", "2",
		"4", "6")
	require.NoError(t, err)

	out := s.out.String()
	assert.Contains(t, out, "Manager creado: ana")
	assert.Contains(t, out, "Manager ana desactivado")
	assert.Contains(t, out, "no puede cambiar el estado de su propia cuenta")
	require.Len(t, s.store.ManagerRows, 2)
	assert.False(t, s.store.ManagerRows[1].IsActive)
	assert.True(t, s.store.ManagerRows[0].IsActive)
}
