package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/pkg/jwt"
)

const minPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	hashCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, hashCost: bcrypt.DefaultCost}
}

// WithHashCost ajusta el costo de bcrypt (tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.hashCost = cost
	return uc
}

// RegisterUser registra un usuario desde la ruta pública. El rol pedido se ignora:
// siempre queda como vendedor. Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.createUser(ctx, in, entity.RoleVendedor)
}

// CreateUser crea un usuario con el rol indicado. Solo un admin puede hacerlo.
func (uc *AuthUseCase) CreateUser(ctx context.Context, principal entity.Principal, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if principal.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: solo admin puede asignar roles", domain.ErrForbidden)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	return uc.createUser(ctx, in, role)
}

// EnsureAdmin crea el admin inicial si el username no existe. Si ya existe no lo toca.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := uc.createUser(ctx, dto.RegisterRequest{Username: username, Password: password}, entity.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *AuthUseCase) createUser(ctx context.Context, in dto.RegisterRequest, role string) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 || len(username) > 100 {
		return nil, fmt.Errorf("%w: username debe tener entre 3 y 100 caracteres", domain.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLen)
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol %q no válido", domain.ErrInvalidInput, role)
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *toUserResponse(user),
	}, nil
}

// Me devuelve el usuario del principal autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, principal entity.Principal) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
