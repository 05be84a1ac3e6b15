package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergePrecedence(t *testing.T) {
	// earlier sources win: the env-derived config is merged first
	fromEnv := &StructuredConfig{
		App:     App{TokenSignKey: "env-secret"},
		Storage: Storage{DB: DB{DSN: "postgres://env"}},
	}
	fromFlags := &StructuredConfig{
		App:     App{TokenSignKey: "flag-secret", TokenIssuer: "flag-issuer"},
		Storage: Storage{DB: DB{DSN: "postgres://flag"}},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, fromEnv, fromFlags)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	// the flag source still fills fields the env source left empty
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://db"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultAccessTokenExpiryMin, cfg.App.AccessTokenExpiryMin)
	assert.Equal(t, DefaultRefreshTokenExpiryDays, cfg.App.RefreshTokenExpiryDays)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)

	// derived lifetimes follow the defaults: 15 min and 7 days
	assert.Equal(t, 15*time.Minute, cfg.App.AccessTokenTTL())
	assert.Equal(t, 7*24*time.Hour, cfg.App.RefreshTokenTTL())
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "missing sign key",
			cfg:     &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://db"}}},
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name:    "missing DSN",
			cfg:     &StructuredConfig{App: App{TokenSignKey: "secret"}},
			wantErr: ErrMissingDatabaseDSN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
