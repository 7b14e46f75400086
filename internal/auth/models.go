// Package auth provides API-client authentication for RoamPlan.
package auth

// TokenRequest represents the request body for the token exchange endpoint.
type TokenRequest struct {
	// ClientID identifies the API client requesting a token.
	ClientID string `json:"clientId"`

	// ClientSecret is the client's long-lived credential.
	ClientSecret string `json:"clientSecret"`
}

// Validate validates the token request.
func (r *TokenRequest) Validate() []FieldError {
	var errors []FieldError

	if r.ClientID == "" {
		errors = append(errors, FieldError{
			Field:   "clientId",
			Message: "client ID is required",
			Code:    "REQUIRED",
		})
	}
	if r.ClientSecret == "" {
		errors = append(errors, FieldError{
			Field:   "clientSecret",
			Message: "client secret is required",
			Code:    "REQUIRED",
		})
	}

	return errors
}

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// TokenResponse represents the response after successful authentication.
type TokenResponse struct {
	// AccessToken is the JWT access token for API authentication.
	AccessToken string `json:"accessToken"`

	// TokenType is always "Bearer".
	TokenType string `json:"tokenType"`

	// ExpiresIn is the number of seconds until the access token expires.
	ExpiresIn int64 `json:"expiresIn"`
}
