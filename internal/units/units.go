// Package units has conversions between speed units used in the output.
package units

// KnotsPerMps converts meters per second to knots.
const KnotsPerMps = 1.94384

// MpsToKnots converts meters per second to knots.
func MpsToKnots(mps float64) float64 {
	return mps * KnotsPerMps
}

// KnotsToMps converts knots to meters per second.
func KnotsToMps(knots float64) float64 {
	return knots / KnotsPerMps
}
