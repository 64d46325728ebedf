package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
)

// Credenciales del manager creado cuando el roster está vacío.
const (
	DefaultManagerUsername = "admin"
	DefaultManagerPassword = "admin123"
	DefaultManagerFullName = "Administrador"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// EnsureSchema aplica las migraciones pendientes (golang-migrate, driver pgx/v5) sobre el pool.
// Sin migraciones pendientes no es error.
func EnsureSchema(pool *pgxpool.Pool) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("leer migraciones: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{MultiStatementEnabled: true})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("driver de migraciones: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("crear migrador: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}

// SeedDefaultManager crea el manager admin/admin123 si el roster está vacío.
// Devuelve true si lo creó.
func SeedDefaultManager(ctx context.Context, repo repository.ManagerRepository) (bool, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	m := entity.NewManager(DefaultManagerUsername, DefaultManagerPassword, DefaultManagerFullName)
	if err := m.HashPassword(); err != nil {
		return false, fmt.Errorf("hash manager por defecto: %w", err)
	}
	if err := repo.Create(ctx, m); err != nil {
		return false, fmt.Errorf("crear manager por defecto: %w", err)
	}
	return true, nil
}

// Bootstrap crea el esquema y siembra el manager por defecto.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) (seeded bool, err error) {
	if err := EnsureSchema(pool); err != nil {
		return false, err
	}
	return SeedDefaultManager(ctx, NewManagerRepository(pool))
}
