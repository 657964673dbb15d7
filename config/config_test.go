package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: authscreen
  log:
    level: info
http:
  port: 9090
googleSignIn:
  webClientId: ""
  platform: android
  scopes: [openid, email]
supabase:
  url: https://project.supabase.co
  anonKey: anon
  requestTimeout: 5s
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestNew_LoadsYAMLAndDefaults(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv(WebClientIDEnv, "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "android", cfg.GoogleSignIn.Platform)
	assert.Equal(t, []string{"openid", "email"}, cfg.GoogleSignIn.Scopes)
	assert.Empty(t, cfg.GoogleSignIn.WebClientID)
	assert.Equal(t, 5*time.Second, cfg.Supabase.RequestTimeout)
	assert.Equal(t, defaultRefreshLeeway, cfg.Supabase.RefreshLeeway)
	assert.Equal(t, defaultSessionBucket, cfg.Supabase.SessionBucket)
	assert.Equal(t, defaultSessionKey, cfg.Supabase.SessionKey)
}

func TestNew_EnvOverridesClientID(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("GOOGLESIGNIN_WEBCLIENTID", "web-client.apps.googleusercontent.com")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "web-client.apps.googleusercontent.com", cfg.GoogleSignIn.WebClientID)
}

func TestNew_FallsBackToWebClientIDEnv(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv(WebClientIDEnv, "fallback.apps.googleusercontent.com")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "fallback.apps.googleusercontent.com", cfg.GoogleSignIn.WebClientID)
}

func TestNew_RejectsInvalidSupabaseURL(t *testing.T) {
	writeConfig(t, `
googleSignIn:
  platform: android
supabase:
  url: not a url
  anonKey: anon
`)

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}
