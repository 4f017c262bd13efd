package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

func setup(t *testing.T) *AuditRepository {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	client, db, err := Connect(context.Background(), Config{URI: uri, Database: "agenda_test"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	repo := NewAuditRepository(db)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return repo
}

func TestAuditRepository_InsertAndFind(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	id := uuid.NewString()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i, action := range []domain.AuditAction{domain.AuditCreated, domain.AuditUpdated, domain.AuditDeleted} {
		err := repo.InsertEvent(ctx, &domain.AuditEvent{
			Entity:     domain.EntityAppointment,
			EntityID:   id,
			Action:     action,
			OccurredAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("insert %s: %v", action, err)
		}
	}
	// same id, other entity: must not leak into the appointment history.
	_ = repo.InsertEvent(ctx, &domain.AuditEvent{Entity: domain.EntityClient, EntityID: id, Action: domain.AuditCreated})

	events, err := repo.FindByEntity(ctx, domain.EntityAppointment, id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Action != domain.AuditCreated || events[2].Action != domain.AuditDeleted {
		t.Errorf("events not ordered by occurred_at: %+v", events)
	}
}

func TestAuditRepository_FindEmpty(t *testing.T) {
	repo := setup(t)

	events, err := repo.FindByEntity(context.Background(), domain.EntityClient, uuid.NewString())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Fatalf("expected empty slice, got %#v", events)
	}
}
