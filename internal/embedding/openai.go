// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doculens/doculens/internal/apperror"
	"github.com/doculens/doculens/internal/model"
)

var allowedModels = map[string]bool{
	"text-embedding-ada-002": true,
	"text-embedding-3-small": true,
	"text-embedding-3-large": true,
}

func badProvider(provider string) error {
	return apperror.NewBadRequest("unknown embedding provider %q", provider)
}

func badModel(m string) error {
	return apperror.NewBadRequest("unknown embedding model %q", m)
}

const openAIEndpoint = "https://api.openai.com/v1/embeddings"

// OpenAI embeds text via OpenAI's /v1/embeddings endpoint.
type OpenAI struct {
	apiKey   string
	model    string
	dim      int
	client   *http.Client
	endpoint string
}

// NewOpenAI validates model against the allow-listed set and constructs a
// client carrying its own HTTP timeout.
func NewOpenAI(apiKey, modelName string) (*OpenAI, error) {
	if !allowedModels[modelName] {
		return nil, badModel(modelName)
	}
	dim := model.EmbeddingConfig{Provider: "OpenAI", Model: modelName}.Dimension()
	return &OpenAI{
		apiKey:   apiKey,
		model:    modelName,
		dim:      dim,
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: openAIEndpoint,
	}, nil
}

func (o *OpenAI) Dimension() int {
	return o.dim
}

type openAIRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

type openAIResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Generate POSTs a single text to OpenAI and returns data[0].embedding
// coerced to float32. Network/API failures surface as UpstreamUnavailable.
func (o *OpenAI) Generate(ctx context.Context, text string) ([]float32, error) {
	payload, err := json.Marshal(openAIRequest{Input: text, Model: o.model})
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to marshal embedding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.NewInternal(err, "failed to build embedding request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, apperror.NewUpstreamUnavailable(err, "embedding provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperror.NewUpstreamUnavailable(fmt.Errorf("status %d: %s", resp.StatusCode, body), "embedding provider returned an error")
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperror.NewUpstreamUnavailable(err, "failed to decode embedding response")
	}
	if len(parsed.Data) == 0 {
		return nil, apperror.NewUpstreamUnavailable(fmt.Errorf("empty embedding response"), "embedding provider returned no data")
	}

	vec := make([]float32, len(parsed.Data[0].Embedding))
	for i, v := range parsed.Data[0].Embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}
