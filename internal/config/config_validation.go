// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	// The avatar bucket is optional, but when it is configured the region
	// and public base URL must come with it.
	if cfg.Avatar.Bucket != "" && (cfg.Avatar.Region == "" || cfg.Avatar.BaseURL == "") {
		return ErrInvalidAvatarConfigs
	}

	return nil
}
