package service

import (
	"context"
	"errors"
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/workflow"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredenciales is returned on a failed login. It deliberately does not say
// whether the email or the password was wrong.
var ErrCredenciales = errors.New("credenciales invalidas")

var rolesValidos = map[string]bool{
	model.RolVendedor:      true,
	model.RolComprador:     true,
	model.RolAdministrador: true,
	model.RolSupervisor:    true,
}

// Claims is the JWT payload. Rol feeds the RequireRole middleware.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (access, refresh string, u *model.Usuario, err error)
	Refrescar(ctx context.Context, refreshToken string) (string, error)
	ValidarToken(token string) (*Claims, error)

	CrearUsuario(ctx context.Context, actor uuid.UUID, email, password, rol string) (*model.Usuario, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ListarUsuarios(ctx context.Context, limit, offset int) ([]model.Usuario, int64, error)
	CambiarActivo(ctx context.Context, actor uuid.UUID, id uuid.UUID, activo bool) error
}

type authService struct {
	usuarios    repository.UsuarioRepository
	actividades ActividadService
	db          *gorm.DB
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthService(usuarios repository.UsuarioRepository, actividades ActividadService, db *gorm.DB, secret string, accessTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		usuarios:    usuarios,
		actividades: actividades,
		db:          db,
		secret:      []byte(secret),
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

func (s *authService) emitir(u *model.Usuario, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Rol:    u.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   u.ID.String(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *model.Usuario, error) {
	u, err := s.usuarios.ObtenerPorEmail(ctx, email)
	if err != nil {
		var noEncontrado *workflow.ErrNoEncontrado
		if errors.As(err, &noEncontrado) {
			return "", "", nil, ErrCredenciales
		}
		return "", "", nil, err
	}
	if !u.Activo {
		return "", "", nil, ErrCredenciales
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", "", nil, ErrCredenciales
	}

	access, err := s.emitir(u, s.accessTTL)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.emitir(u, s.refreshTTL)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, u, nil
}

func (s *authService) Refrescar(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.ValidarToken(refreshToken)
	if err != nil {
		return "", ErrCredenciales
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", ErrCredenciales
	}
	u, err := s.usuarios.ObtenerPorID(ctx, id)
	if err != nil || !u.Activo {
		return "", ErrCredenciales
	}
	return s.emitir(u, s.accessTTL)
}

func (s *authService) ValidarToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metodo de firma inesperado")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrCredenciales
	}
	return claims, nil
}

func (s *authService) CrearUsuario(ctx context.Context, actor uuid.UUID, email, password, rol string) (*model.Usuario, error) {
	if !rolesValidos[rol] {
		return nil, workflow.Validacion("rol", "desconocido")
	}
	if len(password) < 8 {
		return nil, workflow.Validacion("password", "minimo 8 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.Usuario{
		Email:        email,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	}
	u.CreatedBy = &actor
	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.usuarios.WithTx(tx).Crear(ctx, u); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadCreate, model.EntidadUsuario, u.ID, nil)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	return s.usuarios.ObtenerPorID(ctx, id)
}

func (s *authService) ListarUsuarios(ctx context.Context, limit, offset int) ([]model.Usuario, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.usuarios.Listar(ctx, limit, offset)
}

func (s *authService) CambiarActivo(ctx context.Context, actor uuid.UUID, id uuid.UUID, activo bool) error {
	u, err := s.usuarios.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	u.Activo = activo
	u.UpdatedBy = &actor
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.usuarios.WithTx(tx).Actualizar(ctx, u); err != nil {
			return err
		}
		return s.actividades.RegistrarTx(tx, &actor, model.ActividadUpdate, model.EntidadUsuario, id,
			model.JSONB{"activo": activo})
	})
}
