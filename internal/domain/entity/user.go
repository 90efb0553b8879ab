package entity

import "time"

// Roles de usuario. El rol determina qué operaciones de inventario puede
// ejecutar cada petición (ver RequireRole en interfaces/http).
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero" // mutaciones de inventario y compras
	RoleVendedor  = "vendedor"  // ventas y devoluciones
)

// User usuario del sistema con credenciales y rol.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
