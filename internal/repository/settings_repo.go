package repository

import (
	"encoding/json"
	"fmt"

	"collegepath/internal/database"
)

type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves a setting value by key
func (r *SettingsRepository) GetSetting(key string) (string, error) {
	var value string
	query := `SELECT value FROM settings WHERE key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)
	return value, err
}

// SetSetting updates or inserts a setting
func (r *SettingsRepository) SetSetting(key, value string) error {
	query := r.db.Dialect.UpsertSettings()
	_, err := r.db.Exec(query, key, value)
	return err
}

// GetJSONSetting unmarshals a JSON-valued setting into dest. Returns
// false when the key is absent.
func (r *SettingsRepository) GetJSONSetting(key string, dest interface{}) (bool, error) {
	value, err := r.GetSetting(key)
	if err != nil {
		return false, nil
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return false, fmt.Errorf("failed to parse setting %s: %w", key, err)
	}
	return true, nil
}

// SetJSONSetting stores a JSON-valued setting
func (r *SettingsRepository) SetJSONSetting(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}
	return r.SetSetting(key, string(data))
}

// IsInviteOnlyMode checks if invite-only mode is enabled
func (r *SettingsRepository) IsInviteOnlyMode() bool {
	value, err := r.GetSetting("invite_only_mode")
	if err != nil {
		return false // Default to open registration
	}
	return value == "true"
}

// SetInviteOnlyMode enables or disables invite-only mode
func (r *SettingsRepository) SetInviteOnlyMode(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return r.SetSetting("invite_only_mode", value)
}
