package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

type stubAuditRepo struct {
	events []domain.AuditEvent
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, e *domain.AuditEvent) error {
	r.events = append(r.events, *e)
	return nil
}

func (r *stubAuditRepo) FindByEntity(_ context.Context, entity, id string) ([]domain.AuditEvent, error) {
	var out []domain.AuditEvent
	for _, e := range r.events {
		if e.Entity == entity && e.EntityID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestHistoryService_Disabled(t *testing.T) {
	svc := NewHistoryService(nil)

	if _, err := svc.History(context.Background(), domain.EntityAppointment, "1"); !errors.Is(err, domain.ErrAuditUnavailable) {
		t.Fatalf("expected ErrAuditUnavailable, got %v", err)
	}
}

func TestHistoryService_FiltersByEntity(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubAuditRepo{events: []domain.AuditEvent{
		{Entity: domain.EntityAppointment, EntityID: "1", Action: domain.AuditCreated, OccurredAt: now},
		{Entity: domain.EntityAppointment, EntityID: "2", Action: domain.AuditCreated, OccurredAt: now},
		{Entity: domain.EntityClient, EntityID: "1", Action: domain.AuditCreated, OccurredAt: now},
		{Entity: domain.EntityAppointment, EntityID: "1", Action: domain.AuditDeleted, OccurredAt: now},
	}}
	svc := NewHistoryService(repo)

	got, err := svc.History(context.Background(), domain.EntityAppointment, "1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 2 || got[0].Action != domain.AuditCreated || got[1].Action != domain.AuditDeleted {
		t.Fatalf("unexpected history: %+v", got)
	}

	empty, err := svc.History(context.Background(), domain.EntityClient, "nobody")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
