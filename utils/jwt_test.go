package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(7, "barista", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseSessionToken(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.StaffID != 7 || claims.Login != "barista" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestSessionTokenRejects(t *testing.T) {
	valid, _ := GenerateSessionToken(7, "barista", "secret", time.Hour)
	expired, _ := GenerateSessionToken(7, "barista", "secret", -time.Minute)
	anonymous, _ := GenerateSessionToken(0, "", "secret", time.Hour)

	cases := []struct {
		name, token, secret string
	}{
		{"wrong secret", valid, "other"},
		{"expired", expired, "secret"},
		{"no staff id", anonymous, "secret"},
		{"garbage", "not-a-token", "secret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tc.token, tc.secret); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
