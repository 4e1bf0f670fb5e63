package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/domain/config"
)

// configKey is the singleton row key for the configuration aggregate.
const configKey = "app_configuration"

// ConfigRepo implements config.Repository as a single JSONB row.
type ConfigRepo struct {
	txManager *TxManager
}

// NewConfigRepo creates a new configuration repository.
func NewConfigRepo(txManager *TxManager) *ConfigRepo {
	return &ConfigRepo{txManager: txManager}
}

// Get returns the stored configuration or a NotFound error.
func (r *ConfigRepo) Get(ctx context.Context) (*config.Configuration, error) {
	var payload []byte
	err := r.txManager.GetQuerier(ctx).QueryRow(ctx,
		`SELECT payload FROM app_settings WHERE key = $1`, configKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("configuration", configKey)
		}
		return nil, fmt.Errorf("get configuration: %w", err)
	}

	var cfg config.Configuration
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// Save upserts the configuration row.
func (r *ConfigRepo) Save(ctx context.Context, cfg *config.Configuration) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, `
		INSERT INTO app_settings (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`, configKey, payload)
	if err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	return nil
}
