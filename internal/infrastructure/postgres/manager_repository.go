package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

const managerColumns = `id, username, password_hash, full_name, created_at, is_active`

// ManagerRepo implementación del puerto ManagerRepository sobre PostgreSQL.
type ManagerRepo struct {
	q Querier
}

// NewManagerRepository construye el adaptador de persistencia para managers.
func NewManagerRepository(q Querier) *ManagerRepo {
	return &ManagerRepo{q: q}
}

// Create persiste un manager. Usuario repetido -> domain.ErrDuplicate.
func (r *ManagerRepo) Create(ctx context.Context, m *entity.Manager) error {
	query := `
		INSERT INTO managers (` + managerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, m.ID, m.Username, m.PasswordHash, m.FullName, m.CreatedAt, m.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manager: %w", err)
	}
	return nil
}

// GetByID obtiene un manager por ID.
func (r *ManagerRepo) GetByID(ctx context.Context, id string) (*entity.Manager, error) {
	return r.get(ctx, `SELECT `+managerColumns+` FROM managers WHERE id = $1`, id)
}

// GetByUsername obtiene un manager por usuario exacto (sensible a mayúsculas).
func (r *ManagerRepo) GetByUsername(ctx context.Context, username string) (*entity.Manager, error) {
	return r.get(ctx, `SELECT `+managerColumns+` FROM managers WHERE username = $1`, username)
}

func (r *ManagerRepo) get(ctx context.Context, query, arg string) (*entity.Manager, error) {
	m, err := scanManager(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return m, nil
}

// List devuelve el roster completo, más recientes primero.
func (r *ManagerRepo) List(ctx context.Context) ([]*entity.Manager, error) {
	rows, err := r.q.Query(ctx, `SELECT `+managerColumns+` FROM managers ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Manager
	for rows.Next() {
		m, err := scanManager(rows)
		if err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count devuelve el tamaño del roster.
func (r *ManagerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM managers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count managers: %w", err)
	}
	return n, nil
}

// UpdateStatus activa o desactiva un manager. Nunca se borra.
func (r *ManagerRepo) UpdateStatus(ctx context.Context, id string, active bool) error {
	cmd, err := r.q.Exec(ctx, `UPDATE managers SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("update manager status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanManager(row pgx.Row) (*entity.Manager, error) {
	var m entity.Manager
	if err := row.Scan(&m.ID, &m.Username, &m.PasswordHash, &m.FullName, &m.CreatedAt, &m.IsActive); err != nil {
		return nil, err
	}
	return &m, nil
}
