package auth

// Role es el rol que el usuario eligió al entrar. Vacío = aún no eligió.
type Role string

const (
	RoleParent           Role = "parent"
	RoleHealthcareWorker Role = "healthcare_worker"
)

// Valid indica si r es uno de los roles soportados.
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleHealthcareWorker
}

// Claims representa la información extraída del token (y el rol resuelto).
type Claims struct {
	UserID    string
	Anonymous bool
	Role      Role
}
