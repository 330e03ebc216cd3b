package entity

// Roles válidos para quien opera el inventario.
const (
	RoleAdmin      = "admin"
	RoleBodeguero  = "bodeguero"
	RoleVoluntario = "voluntario"
)

// Actor identidad autenticada que ejecuta una operación. La entrega el llamador
// (middleware HTTP); los casos de uso nunca la leen de estado global.
type Actor struct {
	ID   string
	Name string
	Role string
}
