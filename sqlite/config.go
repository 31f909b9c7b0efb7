package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/bw"
)

// Ensure ConfigService implements bw.ConfigService at compile time.
var _ bw.ConfigService = (*ConfigService)(nil)

const keyAPIBaseURL = "api_base_url"

// ConfigService stores configuration in the settings table.
type ConfigService struct {
	db *DB
}

// NewConfigService creates a new ConfigService.
func NewConfigService(db *DB) *ConfigService {
	return &ConfigService{db: db}
}

// APIBaseURL returns the stored API base URL, or bw.DefaultAPIBaseURL when
// none has been set.
func (s *ConfigService) APIBaseURL(ctx context.Context) (string, error) {
	v, err := s.get(ctx, keyAPIBaseURL)
	if bw.ErrorCode(err) == bw.ENOTFOUND {
		return bw.DefaultAPIBaseURL, nil
	} else if err != nil {
		return "", err
	}
	return v, nil
}

// SetAPIBaseURL validates and stores the API base URL. A trailing slash is
// dropped.
func (s *ConfigService) SetAPIBaseURL(ctx context.Context, baseURL string) error {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return bw.Errorf(bw.EINVALID, "API base URL must be an absolute http(s) URL: %q", baseURL)
	}
	return s.set(ctx, keyAPIBaseURL, baseURL)
}

func (s *ConfigService) get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", bw.Errorf(bw.ENOTFOUND, "setting %q not found", key)
	} else if err != nil {
		return "", err
	}
	return v, nil
}

func (s *ConfigService) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}
