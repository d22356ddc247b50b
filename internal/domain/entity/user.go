package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// User representa un usuario del restaurante. Se autentica con un código numérico de 6 dígitos
// (AccessCode) o con email/contraseña.
type User struct {
	ID           string
	Name         string
	Email        string // vacío para usuarios que solo usan código
	AccessCode   string // vacío para usuarios que solo usan email
	PasswordHash string // bcrypt
	Role         string // admin, empleado
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identidad mínima de quien ejecuta una acción.
type Actor struct {
	ID   string
	Name string
	Role string
}

// Actor devuelve la identidad del usuario como actor.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Name: u.Name, Role: u.Role}
}

// IsAdmin indica si el actor tiene rol administrador.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
