package auth

import "strings"

// Role define los roles soportados por el sistema.
// El servicio remoto los expone en mayúsculas (CLIENTE, ADMIN...);
// ParseRole normaliza en la frontera.
type Role string

const (
	RoleCliente       Role = "cliente"
	RoleRecepcionista Role = "recepcionista"
	RoleVeterinario   Role = "veterinario"
	RoleAdmin         Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cliente":
		return RoleCliente, true
	case "recepcionista":
		return RoleRecepcionista, true
	case "veterinario":
		return RoleVeterinario, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Claims representa la identidad resuelta desde la sesión.
type Claims struct {
	UserID string
	Name   string
	Email  string
	Phone  string
	Role   Role
}
