package watch

import (
	"context"
	"testing"
	"time"
)

func TestScheduler_EmptySpec(t *testing.T) {
	s := NewScheduler("", discardLogger())
	if err := s.Start(context.Background(), func(context.Context) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if s.IsRunning() {
		t.Error("scheduler with empty spec should not run")
	}
	if s.NextRun() != nil {
		t.Error("NextRun() should be nil with nothing scheduled")
	}
	s.Stop()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler("every five minutes", discardLogger())
	if err := s.Start(context.Background(), func(context.Context) {}); err == nil {
		t.Fatal("Start() with invalid spec should fail")
	}
	if s.IsRunning() {
		t.Error("scheduler should not run after a failed start")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewScheduler("*/5 * * * *", discardLogger())
	if err := s.Start(ctx, func(context.Context) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !s.IsRunning() {
		t.Fatal("scheduler should be running")
	}
	if err := s.Start(ctx, func(context.Context) {}); err == nil {
		t.Error("second Start() should fail")
	}

	next := s.NextRun()
	if next == nil {
		t.Fatal("NextRun() = nil, want a time")
	}
	if until := time.Until(*next); until <= 0 || until > 5*time.Minute {
		t.Errorf("next run in %v, want within 5 minutes", until)
	}

	s.Stop()
	if s.IsRunning() {
		t.Error("scheduler should be stopped")
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := NewScheduler("0 * * * *", discardLogger())
	if err := s.Start(ctx, func(context.Context) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	cancel()

	deadline := time.Now().Add(time.Second)
	for s.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if s.IsRunning() {
		t.Error("scheduler still running after context cancel")
	}
}
