package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func trackingRequest(start, end string) *domain.TrackingSessionRequest {
	return &domain.TrackingSessionRequest{SleepSession: session(start, end)}
}

func TestTrackingService_AccumulatesSameDaySessions(t *testing.T) {
	repo := NewMockSleepRecordRepository()
	userRepo := NewMockUserRepository()
	userID := newUser(userRepo, "UTC")
	svc := NewTrackingService(repo, userRepo, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Complete(ctx, userID, trackingRequest("2024-01-16T13:00:00Z", "2024-01-16T15:00:00Z"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if first.Outcome != domain.TrackingCreated || first.Record.Duration != 120 {
		t.Fatalf("unexpected first outcome: %+v", first)
	}

	second, err := svc.Complete(ctx, userID, trackingRequest("2024-01-16T16:00:00Z", "2024-01-16T17:30:00Z"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if second.Outcome != domain.TrackingAccumulated {
		t.Fatalf("outcome = %s, want accumulated", second.Outcome)
	}
	if second.Record.Duration != 210 || second.Record.BedTime != "16:00" || second.Record.WakeTime != "17:30" {
		t.Errorf("unexpected accumulated record: %+v", second.Record)
	}
	if second.Record.SessionCount != 2 || second.Record.ID != first.Record.ID {
		t.Errorf("record identity or count wrong: %+v", second.Record)
	}

	stored := repo.records[recordKey(userID, "2024-01-16")]
	if stored.Duration != 210 || stored.Source != domain.SourceAppTracking {
		t.Errorf("stored = %+v", stored)
	}
}

func TestTrackingService_PreservesManual(t *testing.T) {
	repo := NewMockSleepRecordRepository()
	userRepo := NewMockUserRepository()
	userID := newUser(userRepo, "UTC")
	svc := NewTrackingService(repo, userRepo, zap.NewNop())

	manual := domain.DailySleepRecord{UserID: userID, Date: "2024-01-16", BedTime: "23:00", WakeTime: "07:00", Duration: 480}
	manual.SetSource(domain.SourceManual)
	repo.add(manual)

	resp, err := svc.Complete(context.Background(), userID, trackingRequest("2024-01-16T13:00:00Z", "2024-01-16T14:00:00Z"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if resp.Outcome != domain.TrackingPreservedManual {
		t.Errorf("outcome = %s", resp.Outcome)
	}
	if resp.Record.SyncBackup == nil || resp.Record.SyncBackup.Duration != 60 {
		t.Errorf("expected backup of the session: %+v", resp.Record.SyncBackup)
	}
	if len(repo.puts) != 0 {
		t.Error("manual record must not be rewritten")
	}
}

func TestTrackingService_Errors(t *testing.T) {
	repo := NewMockSleepRecordRepository()
	userRepo := NewMockUserRepository()
	svc := NewTrackingService(repo, userRepo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Complete(ctx, uuid.New(), trackingRequest("2024-01-16T13:00:00Z", "2024-01-16T14:00:00Z")); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	userID := newUser(userRepo, "UTC")
	if _, err := svc.Complete(ctx, userID, trackingRequest("2024-01-16T14:00:00Z", "2024-01-16T13:00:00Z")); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
