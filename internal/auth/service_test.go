package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamplan/roamplan/internal/auth"
)

func newTestService() *auth.Service {
	return auth.NewService(auth.ServiceConfig{
		JWTService: auth.NewJWTService(auth.JWTConfig{
			SigningKey: "test-secret-key-for-testing-only",
			Issuer:     "https://api.roamplan.io",
			Audience:   "roamplan-api",
		}),
		Clients: map[string]string{
			"cli_planner": "s3cret-planner",
			"cli_mobile":  "s3cret-mobile",
		},
	})
}

func TestService_IssueAndValidateToken(t *testing.T) {
	svc := newTestService()

	resp, err := svc.IssueToken(&auth.TokenRequest{
		ClientID:     "cli_planner",
		ClientSecret: "s3cret-planner",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresIn, int64(0))

	clientID, err := svc.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "cli_planner", clientID)
}

func TestService_IssueToken_RejectsBadCredentials(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  auth.TokenRequest
	}{
		{"unknown client", auth.TokenRequest{ClientID: "cli_ghost", ClientSecret: "whatever"}},
		{"wrong secret", auth.TokenRequest{ClientID: "cli_planner", ClientSecret: "nope"}},
		{"other client's secret", auth.TokenRequest{ClientID: "cli_planner", ClientSecret: "s3cret-mobile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.IssueToken(&tt.req)
			assert.ErrorIs(t, err, auth.ErrInvalidClientCredentials)
		})
	}
}

func TestService_ValidateAccessToken_Garbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenRequest_Validate(t *testing.T) {
	req := &auth.TokenRequest{}
	errs := req.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "clientId", errs[0].Field)
	assert.Equal(t, "clientSecret", errs[1].Field)

	req = &auth.TokenRequest{ClientID: "cli_planner", ClientSecret: "s3cret"}
	assert.Empty(t, req.Validate())
}
