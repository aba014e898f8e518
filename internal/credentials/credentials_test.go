// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

//go:build !integration && !acceptance

package credentials

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techair/mediakit"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master_keys.env")
	require.NoError(t, os.WriteFile(path, []byte("FREEPIK_API_KEY=abc123\n"), 0o600))

	t.Setenv("FREEPIK_API_KEY", "")
	require.NoError(t, os.Unsetenv("FREEPIK_API_KEY"))

	require.NoError(t, LoadEnvFile(path))

	key, err := APIKey("FREEPIK_API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, mediakit.ErrConfigMissing))
}

func TestAPIKey_Empty(t *testing.T) {
	t.Setenv("MEDIAKIT_TEST_EMPTY_KEY", "")

	_, err := APIKey("MEDIAKIT_TEST_EMPTY_KEY")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mediakit.ErrConfigMissing))
}

func TestValidateServiceAccount_Missing(t *testing.T) {
	t.Setenv(GoogleCredentialsEnv, "")

	err := ValidateServiceAccount(context.Background(), filepath.Join(t.TempDir(), "sa.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, mediakit.ErrConfigMissing))
	assert.Empty(t, os.Getenv(GoogleCredentialsEnv), "env must not be exported on failure")
}

func TestValidateServiceAccount_Unusable(t *testing.T) {
	t.Setenv(GoogleCredentialsEnv, "")

	path := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"unknown-credential-kind"}`), 0o600))

	err := ValidateServiceAccount(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mediakit.ErrDependencyUnavailable))
}
