package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBodeguero, RoleVendedor:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash
	Role         string // admin, bodeguero, vendedor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal es la identidad autenticada que la capa HTTP entrega a los casos de uso.
// Se pasa explícitamente; nunca se guarda en estado global.
type Principal struct {
	UserID   string
	Username string
	Role     string
}

// HasRole indica si el principal tiene alguno de los roles dados.
func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
