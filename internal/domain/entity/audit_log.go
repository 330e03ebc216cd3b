package entity

import "time"

// Acciones registradas en la auditoría.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionLogin  = "LOGIN"
	AuditActionLogout = "LOGOUT"
)

// Entidades lógicas afectadas (además de los tipos de movimiento).
const (
	AuditEntityProduct       = "PRODUCT"
	AuditEntityMasterProduct = "MASTER_PRODUCT"
)

// AuditLog registro inmutable de quién cambió qué.
type AuditLog struct {
	ID              int64
	UserID          string
	RecordChangedID string
	ActionType      string
	Entity          string // INPUT, OUTPUT, ADJUSTMENT_POSITIVE, ADJUSTMENT_NEGATIVE, PRODUCT, ...
	ChangedValue    string // "<cantidad> <unidad>"
	Details         string
	CreatedAt       time.Time
}
