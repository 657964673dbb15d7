package supabase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"authscreen/config"
	"authscreen/internal/domain/entity"
	"authscreen/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const (
	testAnonKey    = "anon-key"
	testSessionKey = "supabase.auth.token"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testClient struct {
	client *Client
	bucket *blob.Bucket
	server *httptest.Server
}

func createTestClient(t *testing.T, handler http.HandlerFunc) *testClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	client := newClient(&config.SupabaseConfig{
		URL:            server.URL + "/",
		AnonKey:        testAnonKey,
		RequestTimeout: 5 * time.Second,
		SessionKey:     testSessionKey,
		RefreshLeeway:  time.Minute,
	}, bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.now = func() time.Time { return testNow }

	return &testClient{client: client, bucket: bucket, server: server}
}

func (tc *testClient) storeSession(t *testing.T, session sessionModel) {
	t.Helper()
	require.NoError(t, tc.client.store.save(context.Background(), &session))
}

func (tc *testClient) storedSession(t *testing.T) *sessionModel {
	t.Helper()

	session, err := tc.client.store.load(context.Background())
	require.NoError(t, err)

	return session
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func sessionBody(accessToken string) map[string]any {
	return map[string]any{
		"access_token":  accessToken,
		"token_type":    "bearer",
		"expires_in":    3600,
		"refresh_token": "refresh-" + accessToken,
		"user": map[string]any{
			"id":            "user-1",
			"email":         "ada@example.com",
			"user_metadata": map[string]any{"full_name": "Ada Lovelace"},
			"app_metadata":  map[string]any{"provider": "google"},
		},
	}
}

func accessTokenWithExpiry(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func TestClient_SignInWithIDToken(t *testing.T) {
	tc := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, tokenPath, r.URL.Path)
		assert.Equal(t, grantIDToken, r.URL.Query().Get("grant_type"))
		assert.Equal(t, testAnonKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer "+testAnonKey, r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "google", body["provider"])
		assert.Equal(t, "google-id-token", body["id_token"])

		writeJSON(t, w, http.StatusOK, sessionBody("access-1"))
	})

	session, err := tc.client.SignInWithIDToken(context.Background(), entity.ProviderTypeGoogle, "google-id-token")
	require.NoError(t, err)

	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, testNow.Unix()+3600, session.ExpiresAt)
	require.NotNil(t, session.User)
	assert.Equal(t, "user-1", session.User.ID)
	assert.Equal(t, "Ada Lovelace", session.User.MetadataString("full_name"))

	stored := tc.storedSession(t)
	require.NotNil(t, stored)
	assert.Equal(t, "refresh-access-1", stored.RefreshToken)
}

func TestClient_SignInWithIDToken_UserlessSessionIsNotStored(t *testing.T) {
	tc := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		body := sessionBody("new-token")
		delete(body, "user")
		writeJSON(t, w, http.StatusOK, body)
	})
	tc.storeSession(t, sessionModel{
		AccessToken:  "old-token",
		RefreshToken: "refresh-old",
		ExpiresAt:    testNow.Add(time.Hour).Unix(),
		User:         &userModel{ID: "user-1"},
	})

	session, err := tc.client.SignInWithIDToken(context.Background(), entity.ProviderTypeGoogle, "google-id-token")
	require.NoError(t, err)

	assert.Equal(t, "new-token", session.AccessToken)
	assert.Nil(t, session.User)

	stored := tc.storedSession(t)
	require.NotNil(t, stored)
	assert.Equal(t, "old-token", stored.AccessToken)
	require.NotNil(t, stored.User)
	assert.Equal(t, "user-1", stored.User.ID)
}

func TestClient_SignInWithIDToken_ErrorBodies(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
		code    string
	}{
		{name: "msg", status: http.StatusBadRequest, body: `{"msg":"invalid token"}`, message: "invalid token"},
		{name: "error_description", status: http.StatusBadRequest, body: `{"error":"invalid_grant","error_description":"Bad ID token"}`, message: "Bad ID token"},
		{name: "error only", status: http.StatusUnauthorized, body: `{"error":"invalid_grant"}`, message: "invalid_grant"},
		{name: "message with code", status: http.StatusUnprocessableEntity, body: `{"message":"Provider is disabled","error_code":"provider_disabled"}`, message: "Provider is disabled", code: "provider_disabled"},
		{name: "plain text", status: http.StatusBadGateway, body: "upstream down", message: "upstream down"},
		{name: "empty", status: http.StatusInternalServerError, body: "", message: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := tc.client.SignInWithIDToken(context.Background(), entity.ProviderTypeGoogle, "token")

			var backendErr *service.BackendAuthError
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, tt.status, backendErr.Status)
			assert.Equal(t, tt.message, backendErr.Message)
			assert.Equal(t, tt.code, backendErr.Code)
			assert.Nil(t, tc.storedSession(t))
		})
	}
}

func TestClient_GetCurrentSession_Empty(t *testing.T) {
	tc := createTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})

	session, err := tc.client.GetCurrentSession(context.Background())

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestClient_GetCurrentSession_Valid(t *testing.T) {
	tc := createTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})
	tc.storeSession(t, sessionModel{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    testNow.Add(time.Hour).Unix(),
		User:         &userModel{ID: "user-1", Email: "ada@example.com"},
	})

	session, err := tc.client.GetCurrentSession(context.Background())
	require.NoError(t, err)

	require.NotNil(t, session)
	assert.Equal(t, "user-1", session.User.ID)
}

func TestClient_GetCurrentSession_ReadsExpiryFromToken(t *testing.T) {
	tc := createTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})
	exp := testNow.Add(time.Hour)
	tc.storeSession(t, sessionModel{
		AccessToken: accessTokenWithExpiry(t, exp),
		User:        &userModel{ID: "user-1"},
	})

	session, err := tc.client.GetCurrentSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, exp.Unix(), session.ExpiresAt)
}

func TestClient_GetCurrentSession_RefreshesNearExpiry(t *testing.T) {
	var calls atomic.Int32
	tc := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, grantRefreshToken, r.URL.Query().Get("grant_type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-old", body["refresh_token"])

		writeJSON(t, w, http.StatusOK, sessionBody("new"))
	})
	tc.storeSession(t, sessionModel{
		AccessToken:  "old",
		RefreshToken: "refresh-old",
		ExpiresAt:    testNow.Add(30 * time.Second).Unix(),
		User:         &userModel{ID: "user-1"},
	})

	session, err := tc.client.GetCurrentSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "new", session.AccessToken)
	assert.Equal(t, "new", tc.storedSession(t).AccessToken)
}

func TestClient_GetCurrentSession_RefreshKeepsStoredUser(t *testing.T) {
	tc := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		body := sessionBody("new")
		delete(body, "user")
		writeJSON(t, w, http.StatusOK, body)
	})
	tc.storeSession(t, sessionModel{
		AccessToken:  "old",
		RefreshToken: "refresh-old",
		ExpiresAt:    testNow.Add(-time.Minute).Unix(),
		User:         &userModel{ID: "user-1", Email: "ada@example.com"},
	})

	session, err := tc.client.GetCurrentSession(context.Background())
	require.NoError(t, err)

	require.NotNil(t, session.User)
	assert.Equal(t, "user-1", session.User.ID)

	stored := tc.storedSession(t)
	assert.Equal(t, "new", stored.AccessToken)
	require.NotNil(t, stored.User)
	assert.Equal(t, "user-1", stored.User.ID)
}

func TestClient_GetCurrentSession_DropsRejectedRefresh(t *testing.T) {
	tc := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"error_description": "Invalid Refresh Token"})
	})
	tc.storeSession(t, sessionModel{
		AccessToken:  "old",
		RefreshToken: "refresh-old",
		ExpiresAt:    testNow.Add(-time.Hour).Unix(),
	})

	session, err := tc.client.GetCurrentSession(context.Background())

	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, tc.storedSession(t))
}

func TestClient_GetCurrentSession_KeepsSessionOnTransportError(t *testing.T) {
	tc := createTestClient(t, func(http.ResponseWriter, *http.Request) {})
	tc.server.Close()
	tc.storeSession(t, sessionModel{
		AccessToken:  "old",
		RefreshToken: "refresh-old",
		ExpiresAt:    testNow.Add(-time.Hour).Unix(),
	})

	_, err := tc.client.GetCurrentSession(context.Background())

	require.Error(t, err)
	assert.NotNil(t, tc.storedSession(t))
}

func TestClient_GetCurrentSession_ValidatesOpaqueToken(t *testing.T) {
	tc := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, userPath, r.URL.Path)
		assert.Equal(t, "Bearer opaque", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, map[string]any{"id": "user-2", "email": "grace@example.com"})
	})
	tc.storeSession(t, sessionModel{AccessToken: "opaque"})

	session, err := tc.client.GetCurrentSession(context.Background())
	require.NoError(t, err)

	require.NotNil(t, session.User)
	assert.Equal(t, "user-2", session.User.ID)
	assert.Equal(t, "user-2", tc.storedSession(t).User.ID)
}

func TestClient_SignOut(t *testing.T) {
	tc := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, logoutPath, r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	tc.storeSession(t, sessionModel{AccessToken: "access-1"})

	require.NoError(t, tc.client.SignOut(context.Background()))
	assert.Nil(t, tc.storedSession(t))
}

func TestClient_SignOut_WithoutSession(t *testing.T) {
	tc := createTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})

	assert.NoError(t, tc.client.SignOut(context.Background()))
}

func TestClient_SignOut_StatusHandling(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusNotFound},
		{status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			tc := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, map[string]string{"msg": "logout failed"})
			})
			tc.storeSession(t, sessionModel{AccessToken: "access-1"})

			err := tc.client.SignOut(context.Background())

			if tt.wantErr {
				var backendErr *service.BackendAuthError
				require.ErrorAs(t, err, &backendErr)
				assert.Equal(t, "logout failed", backendErr.Message)
				assert.NotNil(t, tc.storedSession(t))

				return
			}

			require.NoError(t, err)
			assert.Nil(t, tc.storedSession(t))
		})
	}
}
