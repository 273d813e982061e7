// Package gsheets acquires Google credentials and reads worksheet values
// through the Sheets API.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

const (
	// ServiceAccountEnv names the variable that overrides the key path.
	ServiceAccountEnv = "SERVICE_ACCOUNT_JSON"

	// DefaultServiceAccountFile is used when ServiceAccountEnv is unset.
	DefaultServiceAccountFile = "service_account.json"
)

// Scopes are the OAuth scopes requested by both credential tiers.
var Scopes = []string{
	sheets.SpreadsheetsReadonlyScope,
	drive.DriveReadonlyScope,
}

// Kind identifies how credentials were obtained.
type Kind string

const (
	// KindApplicationDefault is the ambient user or metadata-server login.
	KindApplicationDefault Kind = "application-default"
	// KindServiceAccount is a service-account JSON key file.
	KindServiceAccount Kind = "service-account"
)

// Credentials is the authorization handle used to read a spreadsheet.
type Credentials struct {
	Kind        Kind
	TokenSource oauth2.TokenSource
	// KeyPath is the service-account key file, empty for application-default.
	KeyPath string
}

// Authenticator resolves credentials once per run: application-default
// credentials first, then a service-account key file.
type Authenticator struct {
	// SkipDefault disables the application-default tier.
	SkipDefault bool

	FindDefault func(ctx context.Context, scopes ...string) (*google.Credentials, error)
	Getenv      func(key string) string
	ReadFile    func(name string) ([]byte, error)
}

// NewAuthenticator returns an Authenticator bound to the real environment.
func NewAuthenticator() *Authenticator {
	return &Authenticator{
		FindDefault: google.FindDefaultCredentials,
		Getenv:      os.Getenv,
		ReadFile:    os.ReadFile,
	}
}

// Acquire returns credentials from the first tier that succeeds.
func (a *Authenticator) Acquire(ctx context.Context) (*Credentials, error) {
	if !a.SkipDefault {
		creds, err := a.applicationDefault(ctx)
		if err == nil {
			slog.Info("using application default credentials")
			return creds, nil
		}
		slog.Debug("application default credentials unavailable", "error", err)
	}

	creds, err := a.serviceAccount(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("using service account credentials", "path", creds.KeyPath)
	return creds, nil
}

func (a *Authenticator) applicationDefault(ctx context.Context) (*Credentials, error) {
	found, err := a.FindDefault(ctx, Scopes...)
	if err != nil {
		return nil, err
	}
	// Fetch once so a stale login falls through to the key file.
	if _, err := found.TokenSource.Token(); err != nil {
		return nil, fmt.Errorf("application default token: %w", err)
	}
	return &Credentials{Kind: KindApplicationDefault, TokenSource: found.TokenSource}, nil
}

func (a *Authenticator) serviceAccount(ctx context.Context) (*Credentials, error) {
	path := a.Getenv(ServiceAccountEnv)
	if path == "" {
		path = DefaultServiceAccountFile
	}

	data, err := a.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: set %s or place %q in the working directory",
				ErrCredentialsNotFound, ServiceAccountEnv, DefaultServiceAccountFile)
		}
		return nil, fmt.Errorf("failed to read service account key %s: %w", path, err)
	}

	config, err := google.JWTConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid service account key %s: %w", path, err)
	}

	return &Credentials{
		Kind:        KindServiceAccount,
		TokenSource: config.TokenSource(ctx),
		KeyPath:     path,
	}, nil
}
