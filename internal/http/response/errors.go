// -----------------------------------------------------------------------------
// Standardized Error Response Helpers
// -----------------------------------------------------------------------------
// This file provides convenient helper functions for common error responses,
// ensuring consistency across all controllers.
//
// Benefits:
//   - Consistent error messages
//   - Consistent HTTP status codes
//   - Reduced boilerplate code
//   - Easier to update error messages globally
// -----------------------------------------------------------------------------

package response

import (
	"errors"
	"net/http"

	"github.com/biyonik/product-catalog-api/internal/apperr"
)

// FromError translates a classified application error into its HTTP response.
// Unclassified errors are treated as internal: the client gets the generic
// message, never the underlying cause.
//
// Example:
//
//	if err := service.InsertCatalog(batch); err != nil {
//	    response.FromError(w, err)
//	    return
//	}
func FromError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		Error(w, appErr.Status(), appErr.Message)
		return
	}

	internal := apperr.Internal(err)
	Error(w, internal.Status(), internal.Message)
}

// InvalidJSON sends a 400 Bad Request error for a body that could not be
// decoded.
//
// Example:
//
//	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
//	    response.InvalidJSON(w)
//	    return
//	}
func InvalidJSON(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, "Geçersiz JSON formatı")
}

// BadRequest sends a 400 Bad Request error.
//
// Use this for malformed requests or invalid request parameters.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error.
//
// Use this when authentication is required but not provided, or when
// authentication credentials are invalid.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Kimlik doğrulaması gerekli"
	}
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error.
//
// Use this when the caller is authenticated but doesn't have permission
// to access the resource.
func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bu işlem için yetkiniz yok"
	}
	Error(w, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error.
//
// Use this when a requested resource doesn't exist.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Kayıt bulunamadı"
	}
	Error(w, http.StatusNotFound, message)
}

// MethodNotAllowed sends a 405 Method Not Allowed error.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "Desteklenmeyen HTTP metodu")
}

// ServerError sends a 500 Internal Server Error.
//
// Use this for unexpected server-side errors. Should be used sparingly
// and logged appropriately.
func ServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Sunucu hatası"
	}
	Error(w, http.StatusInternalServerError, message)
}

// TooManyRequests sends a 429 Too Many Requests error.
//
// Use this when rate limiting is exceeded.
func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Çok fazla istek gönderdiniz. Lütfen daha sonra tekrar deneyin."
	}
	Error(w, http.StatusTooManyRequests, message)
}
