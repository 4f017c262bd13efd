package domain

import "time"

type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

const (
	EntityAppointment = "appointment"
	EntityClient      = "client"
)

// AuditEvent records a single mutation of a resource.
type AuditEvent struct {
	Entity   string      `json:"entity" bson:"entity"`
	EntityID string      `json:"entity_id" bson:"entity_id"`
	Action   AuditAction `json:"action" bson:"action"`
	// Fields lists the fields supplied by an update, empty otherwise.
	Fields     []string  `json:"fields,omitempty" bson:"fields,omitempty"`
	RequestID  string    `json:"request_id,omitempty" bson:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}

// ShardKey groups events of the same resource so they are persisted in order.
func (e AuditEvent) ShardKey() string {
	return e.Entity + ":" + e.EntityID
}
