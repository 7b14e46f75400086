package auth

import (
	"crypto/subtle"
	"errors"
	"time"
)

// Predefined service errors.
var (
	ErrInvalidClientCredentials = errors.New("invalid client credentials")
)

// Service provides authentication operations.
//
// Clients are configured statically: the credential set is loaded once at
// startup and held in memory. Secret comparison is constant-time.
type Service struct {
	jwtService *JWTService
	clients    map[string]string
}

// ServiceConfig holds configuration for the auth service.
type ServiceConfig struct {
	JWTService *JWTService

	// Clients maps client IDs to their secrets.
	Clients map[string]string
}

// NewService creates a new auth service.
func NewService(cfg ServiceConfig) *Service {
	clients := make(map[string]string, len(cfg.Clients))
	for id, secret := range cfg.Clients {
		clients[id] = secret
	}
	return &Service{
		jwtService: cfg.JWTService,
		clients:    clients,
	}
}

// IssueToken exchanges client credentials for a short-lived access token.
func (s *Service) IssueToken(req *TokenRequest) (*TokenResponse, error) {
	secret, ok := s.clients[req.ClientID]
	if !ok {
		// Burn a comparison anyway so unknown IDs take the same path.
		subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(req.ClientSecret))
		return nil, ErrInvalidClientCredentials
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(req.ClientSecret)) != 1 {
		return nil, ErrInvalidClientCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.ClientID)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	}, nil
}

// ValidateAccessToken validates a JWT access token and returns the client ID.
func (s *Service) ValidateAccessToken(tokenString string) (string, error) {
	claims, err := s.jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.ClientID, nil
}
