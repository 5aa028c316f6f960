package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-stock/internal/application/auth"
	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-stock/pkg/jwt"
)

const secret = "test-secret"

func newAuth() *auth.AuthUseCase {
	store := memory.NewStore()
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}).
		WithHashCost(bcrypt.MinCost)
}

func TestRegisterLoginMe(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: " ana ", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, entity.RoleVendedor, user.Role, "rol por defecto")

	login, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", login.TokenType)

	userID, username, role, err := jwt.Parse(secret, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "ana", username)
	assert.Equal(t, entity.RoleVendedor, role)

	me, err := uc.Me(ctx, entity.Principal{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "ana", me.Username)
}

func TestRegister_Errores(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "bo", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Username: "beto", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_IgnoraRolPedido(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "intruso", Password: "secreto1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, user.Role)

	login, err := uc.Login(ctx, dto.LoginRequest{Username: "intruso", Password: "secreto1"})
	require.NoError(t, err)
	_, _, role, err := jwt.Parse(secret, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, role)
}

func TestCreateUser_SoloAdminAsignaRol(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	admin := entity.Principal{UserID: "u-admin", Username: "root", Role: entity.RoleAdmin}

	user, err := uc.CreateUser(ctx, admin, dto.RegisterRequest{Username: "bodega", Password: "secreto1", Role: entity.RoleBodeguero})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBodeguero, user.Role)

	_, err = uc.CreateUser(ctx, entity.Principal{Role: entity.RoleBodeguero}, dto.RegisterRequest{Username: "otro", Password: "secreto1", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.CreateUser(ctx, admin, dto.RegisterRequest{Username: "beto", Password: "secreto1", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	created, err := uc.EnsureAdmin(ctx, "root", "secreto1")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin(ctx, "root", "otra-clave")
	require.NoError(t, err)
	assert.False(t, created)

	login, err := uc.Login(ctx, dto.LoginRequest{Username: "root", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, login.User.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Username: "ana", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
