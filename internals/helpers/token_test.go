package helper

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"

	"gymku_backend/internals/configs"
)

func TestSignAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"

	tokenString, err := SignAccessToken("c2a7d0de-0000-4000-8000-000000000001", "member", "jo@example.com")
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		t.Fatalf("parse signed token: %v", err)
	}

	if claims["id"] != "c2a7d0de-0000-4000-8000-000000000001" {
		t.Errorf("id claim = %v", claims["id"])
	}
	if claims["role"] != "member" {
		t.Errorf("role claim = %v", claims["role"])
	}
	if claims["email"] != "jo@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Errorf("exp claim missing or wrong type: %v", claims["exp"])
	}
}

func TestSignAccessTokenMissingSecret(t *testing.T) {
	configs.JWTSecret = ""

	if _, err := SignAccessToken("id", "member", "x@example.com"); err == nil {
		t.Fatal("expected error with empty JWT secret")
	}
}
