// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package credentials resolves API keys and service-account material from
// local credential files.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/techair/mediakit"
	"golang.org/x/oauth2/google"
)

// GoogleCredentialsEnv is the variable the Google SDKs read to locate
// service-account material.
const GoogleCredentialsEnv = "GOOGLE_APPLICATION_CREDENTIALS"

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// LoadEnvFile loads a key-value credentials file into the process
// environment. A missing file is [mediakit.ErrConfigMissing].
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: credentials file not found at %s", mediakit.ErrConfigMissing, path)
		}
		return fmt.Errorf("stat credentials file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load credentials file %s: %w", path, err)
	}

	return nil
}

// APIKey returns the named key from the environment. An unset or empty key
// is [mediakit.ErrConfigMissing].
func APIKey(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%w: %s not set in credentials file or environment", mediakit.ErrConfigMissing, name)
	}
	return value, nil
}

// ValidateServiceAccount checks that a Google service-account file exists
// and parses as usable credential material, then exports its location via
// [GoogleCredentialsEnv] so the SDK picks it up. A missing file is
// [mediakit.ErrConfigMissing]; an unusable one is
// [mediakit.ErrDependencyUnavailable].
func ValidateServiceAccount(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: service account file not found at %s", mediakit.ErrConfigMissing, path)
		}
		return fmt.Errorf("read service account file %s: %w", path, err)
	}

	if _, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope); err != nil {
		return fmt.Errorf("%w: service account file %s is not usable: %v", mediakit.ErrDependencyUnavailable, path, err)
	}

	if err := os.Setenv(GoogleCredentialsEnv, path); err != nil {
		return fmt.Errorf("export %s: %w", GoogleCredentialsEnv, err)
	}

	return nil
}
