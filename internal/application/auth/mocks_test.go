package auth_test

import (
	"context"

	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

type mockManagerRepo struct {
	mock.Mock
}

func (m *mockManagerRepo) Create(ctx context.Context, manager *entity.Manager) error {
	return m.Called(ctx, manager).Error(0)
}

func (m *mockManagerRepo) GetByID(ctx context.Context, id string) (*entity.Manager, error) {
	args := m.Called(ctx, id)
	mgr, _ := args.Get(0).(*entity.Manager)
	return mgr, args.Error(1)
}

func (m *mockManagerRepo) GetByUsername(ctx context.Context, username string) (*entity.Manager, error) {
	args := m.Called(ctx, username)
	mgr, _ := args.Get(0).(*entity.Manager)
	return mgr, args.Error(1)
}

func (m *mockManagerRepo) List(ctx context.Context) ([]*entity.Manager, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Manager)
	return list, args.Error(1)
}

func (m *mockManagerRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockManagerRepo) UpdateStatus(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

// hashedManager crea un manager con la contraseña ya hasheada.
func hashedManager(username, password string, active bool) *entity.Manager {
	m := entity.NewManager(username, password, "Nombre "+username)
	if err := m.HashPassword(); err != nil {
		panic(err)
	}
	m.IsActive = active
	return m
}
