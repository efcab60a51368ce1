package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "maternidad",
		Audience:   "maternidad-api",
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	tok, err := m.IssueAccess(userID, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sessionID)
	}
	if claims.IsExpired() {
		t.Error("freshly issued token reported as expired")
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	m1 := newTestManager(t)
	m2 := newTestManager(t)

	tok, err := m1.IssueRefresh(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	if _, err := m2.Verify(tok); err == nil {
		t.Error("Verify() accepted a token issued under a different key")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Verify("v4.local.not-a-token"); err == nil {
		t.Error("Verify() accepted a malformed token")
	}
}
