package auth

import (
	"context"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
	domainauth "github.com/jhoicas/rustock/internal/domain/auth"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
	"github.com/jhoicas/rustock/pkg/jwt"
	"github.com/jhoicas/rustock/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ManagerUseCase casos de uso del roster de managers: alta, consulta, estado y login.
type ManagerUseCase struct {
	repo   repository.ManagerRepository
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(repo repository.ManagerRepository, jwtCfg JWTConfig, log *logger.Logger) *ManagerUseCase {
	return &ManagerUseCase{repo: repo, jwtCfg: jwtCfg, log: log}
}

// CreateManager valida, hashea la contraseña y persiste. Usuario repetido → domain.ErrDuplicate.
func (uc *ManagerUseCase) CreateManager(ctx context.Context, in dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	m := entity.NewManager(in.Username, in.Password, in.FullName)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := m.HashPassword(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.log.Info().Str("manager_id", m.ID).Str("username", m.Username).Msg("manager creado")
	return ToManagerResponse(m), nil
}

// GetByUsername busca por usuario exacto. Devuelve (nil, nil) si no existe.
func (uc *ManagerUseCase) GetByUsername(ctx context.Context, username string) (*dto.ManagerResponse, error) {
	m, err := uc.repo.GetByUsername(ctx, username)
	if err != nil || m == nil {
		return nil, err
	}
	return ToManagerResponse(m), nil
}

// ListManagers devuelve el roster, más recientes primero.
func (uc *ManagerUseCase) ListManagers(ctx context.Context) ([]dto.ManagerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManagerResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *ToManagerResponse(m))
	}
	return out, nil
}

// SetStatus activa o desactiva un manager. ID desconocido → domain.ErrNotFound.
// actorID es quien hace el cambio (vacío si no hay sesión): nadie cambia su propia cuenta
// y el último manager activo no se puede desactivar.
func (uc *ManagerUseCase) SetStatus(ctx context.Context, actorID, id string, active bool) error {
	if actorID != "" && actorID == id {
		return domain.NewValidationError("manager", "no puede cambiar el estado de su propia cuenta")
	}
	if !active {
		if err := uc.ensureAnotherActive(ctx, id); err != nil {
			return err
		}
	}
	if err := uc.repo.UpdateStatus(ctx, id, active); err != nil {
		return err
	}
	uc.log.Info().Str("manager_id", id).Bool("is_active", active).Msg("estado de manager actualizado")
	return nil
}

func (uc *ManagerUseCase) ensureAnotherActive(ctx context.Context, id string) error {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, m := range list {
		if m.ID != id && m.IsActive {
			return nil
		}
	}
	for _, m := range list {
		if m.ID == id && m.IsActive {
			return domain.NewValidationError("manager", "debe quedar al menos un manager activo")
		}
	}
	return nil
}

// Authenticate devuelve el manager activo con esas credenciales, o nil.
// Credenciales en blanco se rechazan sin consultar el almacenamiento.
func (uc *ManagerUseCase) Authenticate(ctx context.Context, username, password string) (*entity.Manager, error) {
	if !domainauth.HasCredentials(username, password) {
		return nil, nil
	}
	m, err := uc.repo.GetByUsername(ctx, username)
	if err != nil || m == nil {
		return nil, err
	}
	return domainauth.Authenticate(username, password, []*entity.Manager{m}), nil
}

// Login autentica y emite un JWT. Credenciales inválidas → domain.ErrUnauthorized.
func (uc *ManagerUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	m, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.IssueToken(m)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Manager: *ToManagerResponse(m)}, nil
}

// IssueToken firma un JWT para el manager.
func (uc *ManagerUseCase) IssueToken(m *entity.Manager) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, m.ID, m.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// ToManagerResponse convierte la entidad al DTO de salida (sin contraseña).
func ToManagerResponse(m *entity.Manager) *dto.ManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManagerResponse{
		ID:        m.ID,
		Username:  m.Username,
		FullName:  m.FullName,
		CreatedAt: m.CreatedAt,
		IsActive:  m.IsActive,
	}
}

// IsActive indica si el manager existe y está activo.
func (uc *ManagerUseCase) IsActive(ctx context.Context, id string) (bool, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil || m == nil {
		return false, err
	}
	return m.IsActive, nil
}
