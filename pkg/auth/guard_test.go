package auth

import (
	"testing"
)

// TestJWTGuard_Authenticate tests JWT-based client authentication
func TestJWTGuard_Authenticate(t *testing.T) {
	config := testJWTConfig()
	guard := NewJWTGuard(config)

	token, err := GenerateToken("billing-service", ScopeCatalogRead, config)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	client, err := guard.Authenticate(token)
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if client.GetClientID() != "billing-service" {
		t.Errorf("expected client id billing-service, got %s", client.GetClientID())
	}
	if !client.HasScope(ScopeCatalogRead) {
		t.Error("expected catalog:read scope")
	}
	if client.HasScope(ScopeCatalogWrite) {
		t.Error("catalog:write scope should not be granted")
	}
}

// TestJWTGuard_InvalidToken tests that broken tokens are rejected
func TestJWTGuard_InvalidToken(t *testing.T) {
	guard := NewJWTGuard(testJWTConfig())

	if _, err := guard.Authenticate("broken.token.value"); err == nil {
		t.Error("expected error for invalid token, got nil")
	}
}

// TestAPIKeyGuard_Authenticate tests the clientID:apiKey credential flow
func TestAPIKeyGuard_Authenticate(t *testing.T) {
	hash := MustHash("sk_test_12345")
	guard := NewAPIKeyGuard(
		map[string]string{"batch-importer": hash},
		map[string]string{"batch-importer": ScopeCatalogWrite},
	)

	client, err := guard.Authenticate("batch-importer:sk_test_12345")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if client.GetClientID() != "batch-importer" {
		t.Errorf("expected client id batch-importer, got %s", client.GetClientID())
	}
	if !client.HasScope(ScopeCatalogWrite) {
		t.Error("expected catalog:write scope")
	}
	if client.HasScope(ScopeCatalogRead) {
		t.Error("catalog:read scope should not be granted")
	}
}

// TestAPIKeyGuard_Failures tests rejection paths for API key credentials
func TestAPIKeyGuard_Failures(t *testing.T) {
	hash := MustHash("sk_test_12345")
	guard := NewAPIKeyGuard(
		map[string]string{"batch-importer": hash},
		map[string]string{"batch-importer": ScopeCatalogWrite},
	)

	cases := []struct {
		name       string
		credential string
	}{
		{name: "unknown client", credential: "ghost-service:sk_test_12345"},
		{name: "wrong api key", credential: "batch-importer:sk_test_WRONG"},
		{name: "missing separator", credential: "batch-importer"},
		{name: "empty credential", credential: ""},
		{name: "empty key part", credential: "batch-importer:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := guard.Authenticate(tc.credential); err == nil {
				t.Errorf("expected error for credential %q, got nil", tc.credential)
			}
		})
	}
}

// TestAPIKeyGuard_KeyWithColon tests that api keys containing ':' still authenticate
func TestAPIKeyGuard_KeyWithColon(t *testing.T) {
	hash := MustHash("sk:with:colons")
	guard := NewAPIKeyGuard(
		map[string]string{"batch-importer": hash},
		map[string]string{"batch-importer": ScopeCatalogRead},
	)

	client, err := guard.Authenticate("batch-importer:sk:with:colons")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if client.GetClientID() != "batch-importer" {
		t.Errorf("unexpected client id: %s", client.GetClientID())
	}
}

// TestHashAndCheck tests bcrypt hashing round trip
func TestHashAndCheck(t *testing.T) {
	hash, err := Hash("sk_test_12345")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if !Check("sk_test_12345", hash) {
		t.Error("expected matching key to verify")
	}
	if Check("sk_test_OTHER", hash) {
		t.Error("expected non-matching key to fail")
	}
}

// TestHash_EmptyKey tests that empty api keys are rejected
func TestHash_EmptyKey(t *testing.T) {
	if _, err := Hash(""); err == nil {
		t.Error("expected error for empty api key, got nil")
	}
}
