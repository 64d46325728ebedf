// Package console implementa el cliente de terminal de RuStock: login con intentos limitados
// y menús de productos, ventas, compras, reportes y managers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/rustock/internal/application/auth"
	"github.com/jhoicas/rustock/internal/application/inventory"
	"github.com/jhoicas/rustock/internal/application/report"
	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/pkg/logger"
)

// errInputClosed la entrada terminó (EOF); la sesión se cierra sin error.
var errInputClosed = errors.New("console: entrada cerrada")

// Deps dependencias del cliente.
type Deps struct {
	ProductUC   *inventory.ProductUseCase
	SaleUC      *inventory.SaleUseCase
	PurchaseUC  *inventory.PurchaseUseCase
	ManagerUC   *auth.ManagerUseCase
	Reports     *report.Service
	MaxAttempts int          // <= 0 usa auth.DefaultMaxAttempts
	Language    language.Tag // formato de importes
	Log         *logger.Logger
}

// Console sesión interactiva sobre un par lector/escritor.
type Console struct {
	deps    Deps
	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer
	manager *entity.Manager
}

// New crea la consola. in y out suelen ser os.Stdin y os.Stdout.
func New(in io.Reader, out io.Writer, deps Deps) *Console {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return &Console{
		deps:    deps,
		in:      bufio.NewScanner(in),
		out:     out,
		printer: message.NewPrinter(deps.Language),
	}
}

// Run autentica al manager y entra al menú principal. Tras agotar los intentos devuelve
// domain.ErrTooManyAttempts. El fin de la entrada termina la sesión sin error.
func (c *Console) Run(ctx context.Context) error {
	err := c.login(ctx)
	if err == nil {
		err = c.mainMenu(ctx)
	}
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (c *Console) login(ctx context.Context) error {
	guard := auth.NewLoginGuard(c.deps.ManagerUC, c.deps.MaxAttempts)
	c.println("=== RuStock: inicio de sesión ===")
	for {
		username, err := c.ask("Usuario: ")
		if err != nil {
			return err
		}
		password, err := c.askSecret("Contraseña: ")
		if err != nil {
			return err
		}
		m, err := guard.Try(ctx, username, password)
		switch {
		case err == nil:
			c.manager = m
			c.deps.Log.Info().Str("manager_id", m.ID).Str("username", m.Username).Msg("sesión de consola iniciada")
			c.printf("Bienvenido, %s\n", m.FullName)
			return nil
		case errors.Is(err, domain.ErrTooManyAttempts):
			c.deps.Log.Warn().Str("username", username).Msg("intentos de login agotados")
			c.println("acceso denegado")
			return err
		case errors.Is(err, domain.ErrUnauthorized):
			c.printf("Credenciales inválidas. Intentos restantes: %d\n", guard.Remaining())
		default:
			return err
		}
	}
}

func (c *Console) mainMenu(ctx context.Context) error {
	return c.menu(ctx, "RuStock", "Salir", []option{
		{"Productos", c.productsMenu},
		{"Ventas", c.salesMenu},
		{"Compras", c.purchasesMenu},
		{"Reportes", c.reportsMenu},
		{"Managers", c.managersMenu},
	})
}

// ── Menús ─────────────────────────────────────────────────────────────────────

type option struct {
	label string
	run   func(ctx context.Context) error
}

// menu muestra las opciones hasta que se elige la de salida. Los errores de una opción
// se imprimen y se vuelve al menú.
func (c *Console) menu(ctx context.Context, title, exitLabel string, opts []option) error {
	for {
		c.printf("\n=== %s ===\n", title)
		for i, o := range opts {
			c.printf("[%d] %s\n", i+1, o.label)
		}
		c.printf("[%d] %s\n", len(opts)+1, exitLabel)

		choice, err := c.ask("Opción: ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(choice)
		switch {
		case convErr != nil || n < 1 || n > len(opts)+1:
			c.println("Opción inválida")
			continue
		case n == len(opts)+1:
			return nil
		}
		if err := opts[n-1].run(ctx); err != nil {
			if errors.Is(err, errInputClosed) {
				return err
			}
			c.fail(err)
		}
	}
}

// fail informa el error de una operación abandonada.
func (c *Console) fail(err error) {
	var stockErr *domain.StockError
	switch {
	case errors.As(err, &stockErr):
		c.printf("Error: stock insuficiente (disponible %d, solicitado %d)\n", stockErr.Available, stockErr.Requested)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrInsufficientStock):
		c.printf("Error: %v\n", err)
	default:
		c.deps.Log.Error().Err(err).Msg("operación de consola")
		c.printf("Error interno: %v\n", err)
	}
}

// ── Entrada ───────────────────────────────────────────────────────────────────

func (c *Console) ask(label string) (string, error) {
	s, err := c.askSecret(label)
	return strings.TrimSpace(s), err
}

// askSecret lee la línea tal cual: las contraseñas pueden tener espacios en los extremos.
func (c *Console) askSecret(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return c.in.Text(), nil
}

func (c *Console) askInt(label, field string) (int, error) {
	s, err := c.ask(label)
	if err != nil {
		return 0, err
	}
	return parseInt(s, field)
}

func (c *Console) askDecimal(label, field string) (decimal.Decimal, error) {
	s, err := c.ask(label)
	if err != nil {
		return decimal.Zero, err
	}
	return parseDecimal(s, field)
}

// confirm acepta s, si o sí.
func (c *Console) confirm(label string) (bool, error) {
	s, err := c.ask(label + " (s/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "s", "si", "sí":
		return true, nil
	}
	return false, nil
}

// ── Salida ────────────────────────────────────────────────────────────────────

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// money formatea con separadores del idioma configurado.
func (c *Console) money(d decimal.Decimal) string {
	return "$" + c.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
