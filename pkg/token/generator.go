// -----------------------------------------------------------------------------
// Token Generation Utility
// -----------------------------------------------------------------------------
// Kriptografik olarak güvenli rastgele token üretir. API key üretimi ve
// genel amaçlı secret ihtiyaçları için kullanılır.
//
// Tüm token'lar crypto/rand ile üretilir.
// -----------------------------------------------------------------------------

package token

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// GenerateSecureToken generates a cryptographically secure random token.
//
// Parameters:
//   - length: The length of the random bytes to generate (default: 32)
//
// Returns:
//   - string: Base64 URL-encoded token
//   - error: Error if random number generation fails
//
// The token is base64 URL-encoded, making it safe for use in URLs.
//
// Example:
//
//	token, err := token.GenerateSecureToken(32)
//	if err != nil {
//	    return err
//	}
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		length = 32 // Default to 32 bytes
	}

	bytes := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.URLEncoding.EncodeToString(bytes), nil
}

// MustGenerateSecureToken is like GenerateSecureToken but panics on error.
//
// Use this in initialization code where errors should be fatal.
func MustGenerateSecureToken(length int) string {
	token, err := GenerateSecureToken(length)
	if err != nil {
		panic(fmt.Sprintf("failed to generate secure token: %v", err))
	}
	return token
}

// GenerateSecureTokenHex generates a cryptographically secure random token
// encoded as hexadecimal instead of base64.
//
// Hex encoding produces a longer string (2 characters per byte) but contains
// no URL-special characters at all.
func GenerateSecureTokenHex(length int) (string, error) {
	if length <= 0 {
		length = 32
	}

	bytes := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(bytes), nil
}

// GenerateAPIKey generates a token suitable for API keys.
//
// This generates a longer token (48 bytes) for added security in API key
// scenarios. Üretilen key, ':' içermediği için "clientID:apiKey" credential
// formatıyla güvenle kullanılabilir.
//
// Example:
//
//	apiKey, err := token.GenerateAPIKey()
//	if err != nil {
//	    return err
//	}
func GenerateAPIKey() (string, error) {
	return GenerateSecureToken(48)
}
