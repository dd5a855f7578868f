package facebook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGraphServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{GraphURL: server.URL})
}

func TestProfile_Success(t *testing.T) {
	client := newGraphServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "id,name,email", r.URL.Query().Get("fields"))
		assert.Equal(t, "valid-token", r.URL.Query().Get("access_token"))

		_ = json.NewEncoder(w).Encode(Profile{
			ID:    "10223344556677889",
			Name:  "Kumari Jayawardena",
			Email: "kumari@example.com",
		})
	})

	profile, err := client.Profile(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, "10223344556677889", profile.ID)
	assert.Equal(t, "Kumari Jayawardena", profile.Name)
	assert.Equal(t, "kumari@example.com", profile.Email)
}

func TestProfile_SignsWithAppSecretProof(t *testing.T) {
	const appSecret = "fb-app-secret"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, AppSecretProof("valid-token", appSecret), r.URL.Query().Get("appsecret_proof"))
		_ = json.NewEncoder(w).Encode(Profile{ID: "1", Name: "N", Email: "n@example.com"})
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{GraphURL: server.URL, AppSecret: appSecret})
	_, err := client.Profile(context.Background(), "valid-token")
	require.NoError(t, err)

	// Without a configured secret the proof parameter is absent.
	bare := newGraphServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("appsecret_proof"))
		_ = json.NewEncoder(w).Encode(Profile{ID: "1", Name: "N", Email: "n@example.com"})
	})
	_, err = bare.Profile(context.Background(), "valid-token")
	require.NoError(t, err)
}

func TestProfile_InspectsTokenAppBinding(t *testing.T) {
	const (
		appID     = "5550001111"
		appSecret = "fb-app-secret"
	)

	newClient := func(t *testing.T, issuedTo string, valid bool) *Client {
		t.Helper()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/debug_token":
				assert.Equal(t, "user-token", r.URL.Query().Get("input_token"))
				assert.Equal(t, appID+"|"+appSecret, r.URL.Query().Get("access_token"))
				_ = json.NewEncoder(w).Encode(map[string]any{
					"data": map[string]any{"app_id": issuedTo, "is_valid": valid},
				})
			case "/me":
				_ = json.NewEncoder(w).Encode(Profile{ID: "1", Name: "N", Email: "n@example.com"})
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		t.Cleanup(server.Close)
		return NewClient(Config{GraphURL: server.URL, AppID: appID, AppSecret: appSecret})
	}

	t.Run("token for this app passes", func(t *testing.T) {
		client := newClient(t, appID, true)
		profile, err := client.Profile(context.Background(), "user-token")
		require.NoError(t, err)
		assert.Equal(t, "1", profile.ID)
	})

	t.Run("token minted for another app", func(t *testing.T) {
		client := newClient(t, "9990002222", true)
		_, err := client.Profile(context.Background(), "user-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token facebook marks invalid", func(t *testing.T) {
		client := newClient(t, appID, false)
		_, err := client.Profile(context.Background(), "user-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestProfile_RejectedToken(t *testing.T) {
	client := newGraphServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token."}}`))
	})

	_, err := client.Profile(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProfile_EmptyToken(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.Profile(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProfile_NoEmail(t *testing.T) {
	client := newGraphServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Profile{ID: "123", Name: "No Email User"})
	})

	_, err := client.Profile(context.Background(), "valid-token")
	assert.ErrorIs(t, err, ErrNoEmail)
}

func TestProfile_ServerError(t *testing.T) {
	client := newGraphServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Profile(context.Background(), "valid-token")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}
