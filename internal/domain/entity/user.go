package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleAlmacen   = "almacen"
	RoleConsultor = "consultor"
)

// User representa un usuario del sistema (actor de movimientos y transferencias).
type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	Role         string // "admin" | "almacen" | "consultor"
	CreatedAt    time.Time
}
