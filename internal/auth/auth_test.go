package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phylax/contracts/models"
)

func TestIssueAndParse(t *testing.T) {
	a := New("s3cret", time.Hour)
	token, exp, err := a.IssueToken("u1", "Dana", models.RoleOperator)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected future expiry, got %v", exp)
	}
	claims, err := a.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "u1" || claims.Name != "Dana" || claims.Role != models.RoleOperator {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.Role.CanAccessDashboard() || claims.Role.CanAccessAdminSettings() {
		t.Fatalf("unexpected capabilities for %s", claims.Role)
	}
}

func TestIssueRejectsUnknownRole(t *testing.T) {
	a := New("s3cret", time.Hour)
	if _, _, err := a.IssueToken("u1", "Dana", "commander"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssueForUser(t *testing.T) {
	a := New("s3cret", time.Hour)
	u := models.User{ID: "u2", Name: "Sam", Role: models.RoleFieldAgent, Active: true}
	token, _, err := a.IssueForUser(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := a.ParseToken(token)
	if err != nil || claims.Role != models.RoleFieldAgent {
		t.Fatalf("unexpected parse result %+v, %v", claims, err)
	}

	u.Active = false
	if _, _, err := a.IssueForUser(u); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected inactive user rejected, got %v", err)
	}
}

func TestParseRejects(t *testing.T) {
	a := New("s3cret", time.Hour)
	token, _, err := a.IssueToken("u1", "Dana", models.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := New("other", time.Hour).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected signature failure, got %v", err)
	}

	expired, _, err := New("s3cret", -time.Minute).IssueToken("u1", "Dana", models.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := a.ParseToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expiry failure, got %v", err)
	}

	if _, err := a.ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected malformed failure, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"abc":          "",
		"":             "",
	}
	for header, want := range cases {
		if got := ExtractBearerToken(header); got != want {
			t.Fatalf("ExtractBearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestClaimsContext(t *testing.T) {
	if _, ok := ClaimsFromContext(context.Background()); ok {
		t.Fatalf("expected no claims")
	}
	ctx := ContextWithClaims(context.Background(), &Claims{Role: models.RoleAdmin})
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.Role != models.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}
