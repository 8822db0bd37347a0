package ingest

// Exceeds reports whether score crosses the configured threshold.
// Strict greater-than: a score exactly equal to the threshold is not
// flagged. The threshold is supplied per call from configuration so
// deployments can run different cutoffs without code changes.
func Exceeds(score, threshold float64) bool {
	return score > threshold
}
