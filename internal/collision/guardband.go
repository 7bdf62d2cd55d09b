// Package collision implements the closed-form collision-time
// predictors and the elastic collision responses, as pure functions of
// particle/obstacle state.
package collision

// Guardband holds the numerical thresholds that keep the predictors from
// re-reporting contacts already in progress. They are configuration,
// not constants, so a RunConfig can tune them per problem scale.
type Guardband struct {
	// Eps1 rejects disk pairs that are receding or moving in parallel.
	Eps1 float64
	// Eps2 rejects a near-zero or negative discriminant.
	Eps2 float64
	// Eps3 rejects a predicted contact time too close to "now" to be
	// meaningfully in the future, breaking sticky repeated contacts.
	Eps3 float64
}

// DefaultGuardband returns the recommended thresholds
// (ε₁ = ε₂ = ε₃ ≈ 1e-14).
func DefaultGuardband() Guardband {
	return Guardband{Eps1: 1e-14, Eps2: 1e-14, Eps3: 1e-14}
}

// NoContact is the sentinel returned by every predictor when no future
// contact exists.
const NoContact = -1.0
