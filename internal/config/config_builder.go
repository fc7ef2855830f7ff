// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults applied after merging when no source supplied a value. The sign
// key has no default on purpose: tokens must never be signed with a
// well-known secret.
const (
	defaultTokenIssuer   = "recipe-app-api"
	defaultTokenDuration = 24 * time.Hour
)

// configBuilder collects configuration from all supported sources and merges
// them in priority order: env > flags > JSON file.
type configBuilder struct {
	envConfig   *StructuredConfig
	flagsConfig *StructuredConfig
	jsonConfig  *StructuredConfig

	errs []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		b.errs = append(b.errs, fmt.Errorf("error parsing env configs: %w", err))
		return b
	}

	b.envConfig = cfg
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	cfg, err := ParseFlags()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("error parsing flags configs: %w", err))
		return b
	}

	b.flagsConfig = cfg
	return b
}

// withJSON reads the JSON config file whose path was supplied by env or
// flags. No path means no JSON source, which is not an error.
func (b *configBuilder) withJSON() *configBuilder {
	jsonFilePath := b.jsonFilePath()
	if jsonFilePath == "" {
		return b
	}

	cfg, err := parseJSON(jsonFilePath)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("error parsing json configs: %w", err))
		return b
	}

	b.jsonConfig = cfg
	return b
}

func (b *configBuilder) jsonFilePath() string {
	if b.envConfig != nil && b.envConfig.JSONFilePath != "" {
		return b.envConfig.JSONFilePath
	}
	if b.flagsConfig != nil && b.flagsConfig.JSONFilePath != "" {
		return b.flagsConfig.JSONFilePath
	}
	return ""
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	cfg := &StructuredConfig{}
	for _, source := range []*StructuredConfig{b.envConfig, b.flagsConfig, b.jsonConfig} {
		if source == nil {
			continue
		}
		if err := mergo.Merge(cfg, source); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills the token parameters GenerateJWTToken refuses to work
// without, so a config that passes validation can always issue tokens.
func (c *StructuredConfig) applyDefaults() {
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}
}
