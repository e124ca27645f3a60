// Package llm holds the curated model catalog: profile-to-model mapping,
// region-prefix normalization, and per-token pricing for cost estimates.
package llm

import (
	"fmt"
	"strings"

	"github.com/agentfleet/agentfleet/pkg/models"
)

// Model profiles selectable per run.
const (
	ProfileFast     = "fast"
	ProfileBalanced = "balanced"
	ProfileDeep     = "deep"

	DefaultProfile = ProfileBalanced
)

// CatalogEntry is one curated model with its pricing.
type CatalogEntry struct {
	// ModelID is the canonical (region-free) provider id.
	ModelID     string
	DisplayName string
	// Prices are USD per million tokens.
	InputPricePerMTok  float64
	OutputPricePerMTok float64
	MaxTokens          int
}

// profiles maps profile keys to curated entries. Runs address models either
// by profile or by an explicit id that must resolve into this set.
var profiles = map[string]CatalogEntry{
	ProfileFast: {
		ModelID:            "anthropic.claude-3-5-haiku-20241022-v1:0",
		DisplayName:        "Claude 3.5 Haiku",
		InputPricePerMTok:  0.80,
		OutputPricePerMTok: 4.00,
		MaxTokens:          8192,
	},
	ProfileBalanced: {
		ModelID:            "anthropic.claude-sonnet-4-20250514-v1:0",
		DisplayName:        "Claude Sonnet 4",
		InputPricePerMTok:  3.00,
		OutputPricePerMTok: 15.00,
		MaxTokens:          8192,
	},
	ProfileDeep: {
		ModelID:            "anthropic.claude-opus-4-20250514-v1:0",
		DisplayName:        "Claude Opus 4",
		InputPricePerMTok:  15.00,
		OutputPricePerMTok: 75.00,
		MaxTokens:          8192,
	},
}

// regionPrefixes are the inference-routing prefixes stripped during
// normalization.
var regionPrefixes = []string{"us.", "eu.", "apac.", "global."}

// NormalizeModelID strips one leading region prefix, yielding the canonical
// id used as the accumulator key. Idempotent.
func NormalizeModelID(id string) string {
	for _, prefix := range regionPrefixes {
		if rest, ok := strings.CutPrefix(id, prefix); ok {
			return rest
		}
	}
	return id
}

// Resolve picks the curated entry for a run. An explicit model id wins over
// the profile and must normalize into the curated set.
func Resolve(profile, modelID string) (CatalogEntry, error) {
	if modelID != "" {
		canonical := NormalizeModelID(modelID)
		for _, entry := range profiles {
			if entry.ModelID == canonical {
				return entry, nil
			}
		}
		return CatalogEntry{}, fmt.Errorf("model %q is not in the curated catalog", modelID)
	}
	if profile == "" {
		profile = DefaultProfile
	}
	entry, ok := profiles[profile]
	if !ok {
		return CatalogEntry{}, fmt.Errorf("unknown model profile %q", profile)
	}
	return entry, nil
}

// EntryForModelID finds the curated entry matching an id in any region form.
func EntryForModelID(id string) (CatalogEntry, bool) {
	canonical := NormalizeModelID(id)
	for _, entry := range profiles {
		if entry.ModelID == canonical {
			return entry, true
		}
	}
	return CatalogEntry{}, false
}

// Profiles returns the available profile keys.
func Profiles() []string {
	return []string{ProfileFast, ProfileBalanced, ProfileDeep}
}

// EstimateCostUSD prices a usage total against a curated entry.
func EstimateCostUSD(entry CatalogEntry, usage models.TokenUsage) float64 {
	const mtok = 1_000_000
	return float64(usage.InputTokens)/mtok*entry.InputPricePerMTok +
		float64(usage.OutputTokens)/mtok*entry.OutputPricePerMTok
}

// EstimateCostForModel prices usage for a model id, returning false when the
// model is not curated.
func EstimateCostForModel(modelID string, usage models.TokenUsage) (float64, bool) {
	entry, ok := EntryForModelID(modelID)
	if !ok {
		return 0, false
	}
	return EstimateCostUSD(entry, usage), true
}
