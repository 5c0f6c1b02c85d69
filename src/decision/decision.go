package decision

// FraudThreshold is the fixed process-wide operating point. Not
// configurable per request.
const FraudThreshold = 0.3

// Decide converts a probability into a binary fraud verdict. Strict
// greater-than: a probability exactly at the threshold is not fraud.
func Decide(probability, threshold float64) bool {
	return probability > threshold
}
