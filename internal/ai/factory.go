// Package ai selects the completer implementation for the configured
// environment.
package ai

import (
	"log/slog"

	"github.com/astrasemi/fabassist/internal/ai/anthropic"
	"github.com/astrasemi/fabassist/internal/ai/mock"
	"github.com/astrasemi/fabassist/internal/config"
	"github.com/astrasemi/fabassist/pkg/models"
)

// NewCompleter constructs the live gateway when a plausible credential is
// configured, and the deterministic mock completer otherwise. Called once
// at server startup; a malformed credential is downgraded to the mock path
// with a warning, never a startup failure.
func NewCompleter(cfg config.AIConfig) models.Completer {
	if cfg.APIKey == "" {
		slog.Info("no LLM credential configured, using mock completer")
		return mock.NewCompleter()
	}
	if !cfg.HasCredential() {
		slog.Warn("LLM credential does not match expected prefix, using mock completer",
			"expected_prefix", config.CredentialPrefix)
		return mock.NewCompleter()
	}
	return anthropic.NewGateway(cfg)
}
