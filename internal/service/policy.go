package service

import (
	"collegepath/internal/planner"
	"collegepath/internal/repository"
)

// Setting keys for admin-configurable planner policies. Stored as JSON
// in the settings table; defaults apply when absent or unreadable.
const (
	settingGPAPolicy  = "gpa_policy"
	settingRiskPolicy = "risk_policy"
)

// LoadGPAPolicy returns the configured GPA policy, or the default when
// no override is stored
func LoadGPAPolicy(settingsRepo *repository.SettingsRepository) planner.GPAPolicy {
	policy := planner.DefaultGPAPolicy()
	if settingsRepo == nil {
		return policy
	}
	var override planner.GPAPolicy
	if ok, err := settingsRepo.GetJSONSetting(settingGPAPolicy, &override); err == nil && ok {
		if len(override.Breakpoints) > 0 {
			policy = override
		}
	}
	return policy
}

// LoadRiskPolicy returns the configured risk policy, or the default
// when no override is stored
func LoadRiskPolicy(settingsRepo *repository.SettingsRepository) planner.RiskPolicy {
	policy := planner.DefaultRiskPolicy()
	if settingsRepo == nil {
		return policy
	}
	var override planner.RiskPolicy
	if ok, err := settingsRepo.GetJSONSetting(settingRiskPolicy, &override); err == nil && ok {
		if override.SafetyGPAMargin > 0 {
			policy = override
		}
	}
	return policy
}

// SaveGPAPolicy stores an admin override of the GPA policy
func SaveGPAPolicy(settingsRepo *repository.SettingsRepository, policy planner.GPAPolicy) error {
	return settingsRepo.SetJSONSetting(settingGPAPolicy, policy)
}

// SaveRiskPolicy stores an admin override of the risk policy
func SaveRiskPolicy(settingsRepo *repository.SettingsRepository, policy planner.RiskPolicy) error {
	return settingsRepo.SetJSONSetting(settingRiskPolicy, policy)
}
