package algorithms

// Score linearly combines the feature vector with the supplied weights:
// Σ features[k] * weights[k] over every key present in weights. Unknown
// keys contribute 0 on either side; weights are not renormalized.
func Score(features FeatureVector, weights map[string]float64) float64 {
	total := 0.0
	for name, w := range weights {
		total += features.Value(name) * w
	}
	return total
}
