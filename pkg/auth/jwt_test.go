package auth

import (
	"testing"
	"time"
)

func testJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:         "test-secret-key-for-unit-tests-only",
		Issuer:         "product-catalog-api",
		ExpirationTime: 1 * time.Hour,
	}
}

// TestGenerateAndParseToken tests the token round trip with claims intact
func TestGenerateAndParseToken(t *testing.T) {
	config := testJWTConfig()

	token, err := GenerateToken("inventory-service", ScopeCatalogRead+" "+ScopeCatalogWrite, config)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ParseToken(token, config)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.ClientID != "inventory-service" {
		t.Errorf("expected client id inventory-service, got %s", claims.ClientID)
	}
	if !claims.HasScope(ScopeCatalogRead) || !claims.HasScope(ScopeCatalogWrite) {
		t.Errorf("expected both catalog scopes, got %q", claims.Scopes)
	}
	if claims.HasScope("admin:everything") {
		t.Error("unexpected scope granted")
	}
}

// TestParseToken_WrongSecret tests that tokens signed with another secret are rejected
func TestParseToken_WrongSecret(t *testing.T) {
	config := testJWTConfig()

	token, err := GenerateToken("inventory-service", ScopeCatalogRead, config)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := testJWTConfig()
	other.Secret = "a-completely-different-secret-key"

	if _, err := ParseToken(token, other); err == nil {
		t.Error("expected error for token signed with another secret, got nil")
	}
}

// TestParseToken_Expired tests that expired tokens are rejected
func TestParseToken_Expired(t *testing.T) {
	config := testJWTConfig()
	config.ExpirationTime = -1 * time.Minute // geçmişte expire olmuş token üret

	token, err := GenerateToken("inventory-service", ScopeCatalogRead, config)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token, testJWTConfig()); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

// TestParseToken_Garbage tests that malformed tokens are rejected
func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt-token", testJWTConfig()); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

// TestValidateToken tests the boolean validation helper
func TestValidateToken(t *testing.T) {
	config := testJWTConfig()

	token, err := GenerateToken("inventory-service", ScopeCatalogRead, config)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if !ValidateToken(token, config) {
		t.Error("expected valid token to validate")
	}
	if ValidateToken("garbage", config) {
		t.Error("expected garbage token to fail validation")
	}
}

// TestExtractTokenFromHeader tests Bearer prefix handling
func TestExtractTokenFromHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing prefix", header: "abc.def.ghi", want: ""},
		{name: "wrong scheme", header: "Basic abc", want: ""},
		{name: "empty header", header: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tc.header); got != tc.want {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

// TestHasScope tests space-separated scope matching
func TestHasScope(t *testing.T) {
	claims := &ServiceClaims{Scopes: "catalog:read catalog:write"}

	if !claims.HasScope("catalog:read") {
		t.Error("expected catalog:read scope")
	}
	if !claims.HasScope("catalog:write") {
		t.Error("expected catalog:write scope")
	}
	// Prefix eşleşmesi scope vermemeli
	if claims.HasScope("catalog") {
		t.Error("partial scope name should not match")
	}
}
