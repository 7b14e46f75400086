package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roamplan/roamplan/internal/api/models"
	"github.com/roamplan/roamplan/internal/api/response"
	"github.com/roamplan/roamplan/internal/auth"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	service *auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token handles POST /v1/auth/token - exchange client credentials for
// an access token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var input auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if fieldErrors := input.Validate(); len(fieldErrors) > 0 {
		apiErrors := make([]models.FieldError, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			apiErrors = append(apiErrors, models.FieldError{
				Field:   fe.Field,
				Message: fe.Message,
				Code:    fe.Code,
			})
		}
		response.BadRequest(w, r, "invalid token request", apiErrors)
		return
	}

	tokens, err := h.service.IssueToken(&input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidClientCredentials) {
			response.Unauthorized(w, r, "invalid client credentials")
			return
		}
		response.InternalError(w, r, "token issuance failed")
		return
	}

	response.JSON(w, r, http.StatusOK, tokens)
}
