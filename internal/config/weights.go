package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"edurec_backend/internal/logger"
)

// DefaultWeights is the hardcoded scoring-weight mapping used verbatim
// when no weights file is configured or the file cannot be read.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"similarity":       0.48,
		"interestOverlap":  0.22,
		"budgetFit":        0.14,
		"locationMatch":    0.06,
		"placementScore":   0.05,
		"scholarshipMatch": 0.03,
		"studyModeMatch":   0.02,
	}
}

// LoadWeights reads the feature->weight mapping from a YAML file. Loaded
// once at startup and treated as immutable; any failure falls back to
// DefaultWeights rather than refusing to start.
func LoadWeights(path string) map[string]float64 {
	if path == "" {
		return DefaultWeights()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("weights file not readable, using default weights", "path", path, "error", err)
		return DefaultWeights()
	}

	weights := make(map[string]float64)
	if err := yaml.Unmarshal(data, &weights); err != nil {
		logger.Warn("weights file not parseable, using default weights", "path", path, "error", err)
		return DefaultWeights()
	}
	if len(weights) == 0 {
		return DefaultWeights()
	}

	logger.Info("scoring weights loaded", "path", path, "features", len(weights))
	return weights
}
