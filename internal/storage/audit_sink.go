package storage

import "context"

// AuditWriter позволяет использовать Store как приемник аудита.
type AuditWriter interface {
	Write(ctx context.Context, ev AuditEvent) error
}
