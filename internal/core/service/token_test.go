package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopverse/storefront/internal/core/domain"
)

func TestTokenService_IssueCarriesClaims(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	signed, err := s.Issue(&domain.User{ID: "admin-001", Role: domain.RoleAdmin}, "sess-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("token should verify: %v", err)
	}
	if claims["sub"] != "admin-001" || claims["role"] != "admin" || claims["sid"] != "sess-1" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestTokenService_Expired(t *testing.T) {
	s := NewTokenService("secret", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }

	signed, err := s.Issue(&domain.User{ID: "u", Role: domain.RoleCustomer}, "sess")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, err = jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return []byte("secret"), nil })
	if err == nil {
		t.Fatalf("expired token should not verify")
	}
}
