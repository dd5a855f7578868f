// Package lockout implements the login-attempt lockout policy as a pure
// state machine. The service layer owns persistence; this package only
// computes transitions, so it is trivially testable with a fixed clock.
package lockout

import "time"

// Policy holds the lockout thresholds.
type Policy struct {
	// MaxAttempts is the consecutive-failure count that triggers a lock.
	MaxAttempts int

	// LockDuration is the window applied when the threshold is reached.
	LockDuration time.Duration
}

// DefaultPolicy matches the platform defaults: 5 failures, 2 hour lock.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 5, LockDuration: 2 * time.Hour}
}

// State is the lockout state carried on a credential record.
// LockUntil == nil means the account is not locked.
type State struct {
	Attempts  int
	LockUntil *time.Time
}

// Locked reports whether the account is actively locked at now.
// A LockUntil in the past does not count: the lock has expired and the next
// evaluation treats the account as fresh.
func (s State) Locked(now time.Time) bool {
	return s.LockUntil != nil && s.LockUntil.After(now)
}

// normalize collapses an expired lock to the fresh unlocked state before a
// transition is applied.
func (s State) normalize(now time.Time) State {
	if s.LockUntil != nil && !s.LockUntil.After(now) {
		return State{}
	}
	return s
}

// OnFailure returns the state after a failed authentication attempt at now.
// The caller must not invoke this while Locked(now) is true; an active lock
// rejects the attempt before the password is ever checked and the counter
// stays where it is.
func (p Policy) OnFailure(s State, now time.Time) State {
	s = s.normalize(now)
	s.Attempts++
	if s.Attempts >= p.MaxAttempts {
		until := now.Add(p.LockDuration)
		s.LockUntil = &until
	}
	return s
}

// OnSuccess returns the state after a successful authentication at now:
// counters reset and any expired lock is cleared.
func (p Policy) OnSuccess(s State, now time.Time) State {
	return State{}
}
