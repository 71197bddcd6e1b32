// Package builder provides validation helpers to enforce parameter
// contracts of Generate.
package builder

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Returns "<Method>: <name> must be in [0.0,1.0], got <p>: <sentinel>" on failure.
//
// Parameters:
//   - method: canonical operation name.
//   - name:   which chance is being checked, for the message.
//   - p:      probability value to validate.
//
// Complexity: O(1) time and space.
func validateProbability(method, name string, p float64) error {
	// NaN fails both comparisons, so test for the valid range instead.
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability,
			"%s must be in [%.1f,%.1f], got %f", name, MinProbability, MaxProbability, p)
	}

	return nil
}
