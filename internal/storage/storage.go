package storage

import (
	"context"
	"time"
)

// AuditEvent фиксирует выполненную команду.
type AuditEvent struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Command   string    `json:"command"`
	ExitCode  int       `json:"exit_code"`
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	TS        time.Time `json:"ts"`
}

// AuditQuery задает фильтры выборки аудита.
type AuditQuery struct {
	From  time.Time
	To    time.Time
	Key   string
	Limit int
}

// Store описывает операции хранилища.
type Store interface {
	SaveAudit(ctx context.Context, ev AuditEvent) error
	QueryAudit(ctx context.Context, q AuditQuery) ([]AuditEvent, error)
	Close() error
}
