// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package embedding turns text into fixed-dimension vectors via a named
// provider/model, mirroring the teacher's Embedder capability
// (internal/embeddings/embeddings.go) narrowed to the spec's allow-listed
// OpenAI models.
package embedding

import (
	"context"

	"github.com/doculens/doculens/internal/model"
)

// Embedder generates vector embeddings from text for a single, fixed
// (provider, model) pair.
type Embedder interface {
	Generate(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// New dispatches to the implementation for the given embedding config.
// OpenAI is the only networked provider; an unknown provider is a
// BadRequest, mirroring spec.md §4.1.
func New(cfg model.EmbeddingConfig, apiKey string) (Embedder, error) {
	switch cfg.Provider {
	case "OpenAI", "openai":
		return NewOpenAI(apiKey, cfg.Model)
	default:
		return nil, badProvider(cfg.Provider)
	}
}
