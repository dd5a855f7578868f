package lockout

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestOnFailure_IncrementsBelowThreshold(t *testing.T) {
	p := DefaultPolicy()
	s := State{}

	for i := 1; i < p.MaxAttempts; i++ {
		s = p.OnFailure(s, t0)
		if s.Attempts != i {
			t.Fatalf("after %d failures: attempts = %d", i, s.Attempts)
		}
		if s.LockUntil != nil {
			t.Fatalf("after %d failures: unexpectedly locked", i)
		}
	}
}

func TestOnFailure_LocksAtThreshold(t *testing.T) {
	p := DefaultPolicy()
	s := State{Attempts: 4}

	s = p.OnFailure(s, t0)
	if s.LockUntil == nil {
		t.Fatal("5th failure should lock")
	}
	want := t0.Add(2 * time.Hour)
	if !s.LockUntil.Equal(want) {
		t.Errorf("LockUntil = %v, want %v", s.LockUntil, want)
	}
	if !s.Locked(t0) {
		t.Error("Locked(now) should be true right after locking")
	}
}

func TestOnSuccess_Resets(t *testing.T) {
	p := DefaultPolicy()
	s := p.OnSuccess(State{Attempts: 3}, t0)
	if s.Attempts != 0 || s.LockUntil != nil {
		t.Errorf("OnSuccess = %+v, want zero state", s)
	}
}

func TestLocked_ExpiryBoundary(t *testing.T) {
	until := t0.Add(2 * time.Hour)
	s := State{Attempts: 5, LockUntil: &until}

	if !s.Locked(t0) {
		t.Error("should be locked at lock time")
	}
	if !s.Locked(until.Add(-time.Second)) {
		t.Error("should be locked just before expiry")
	}
	if s.Locked(until) {
		t.Error("should not be locked exactly at expiry")
	}
	if s.Locked(until.Add(time.Second)) {
		t.Error("should not be locked after expiry")
	}
}

func TestOnFailure_ExpiredLockReprocessesFresh(t *testing.T) {
	p := DefaultPolicy()
	until := t0.Add(2 * time.Hour)
	s := State{Attempts: 5, LockUntil: &until}

	// A failure evaluated after expiry starts from a clean slate: this is
	// attempt 1 of a new sequence, not attempt 6.
	later := until.Add(time.Minute)
	s = p.OnFailure(s, later)
	if s.Attempts != 1 {
		t.Errorf("attempts after expired-lock failure = %d, want 1", s.Attempts)
	}
	if s.LockUntil != nil {
		t.Error("expired-lock failure should not re-lock at attempt 1")
	}
}

func TestOnSuccess_ExpiredLockClears(t *testing.T) {
	p := DefaultPolicy()
	until := t0.Add(2 * time.Hour)
	s := State{Attempts: 5, LockUntil: &until}

	s = p.OnSuccess(s, until.Add(time.Minute))
	if s.Attempts != 0 || s.LockUntil != nil {
		t.Errorf("OnSuccess after expiry = %+v, want zero state", s)
	}
}

func TestFullSequence(t *testing.T) {
	p := DefaultPolicy()
	s := State{}

	// 4 failures: still unlocked.
	for i := 0; i < 4; i++ {
		s = p.OnFailure(s, t0)
	}
	if s.Locked(t0) {
		t.Fatal("locked before threshold")
	}

	// Success on attempt 5 resets everything.
	s = p.OnSuccess(s, t0)
	if s.Attempts != 0 {
		t.Fatalf("attempts after success = %d", s.Attempts)
	}

	// 5 straight failures lock.
	for i := 0; i < 5; i++ {
		s = p.OnFailure(s, t0)
	}
	if !s.Locked(t0.Add(time.Hour)) {
		t.Fatal("should remain locked within the window")
	}
	if s.Locked(t0.Add(2*time.Hour + time.Second)) {
		t.Fatal("lock should expire after the window")
	}
}
