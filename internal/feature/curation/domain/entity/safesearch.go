// Package entity defines the domain models for the curation feature.
package entity

// Likelihood mirrors the Vision API's five-step likelihood scale.
type Likelihood int

const (
	LikelihoodUnknown Likelihood = iota
	LikelihoodVeryUnlikely
	LikelihoodUnlikely
	LikelihoodPossible
	LikelihoodLikely
	LikelihoodVeryLikely
)

// SafeSearchResult holds the moderation verdicts for a single image.
type SafeSearchResult struct {
	Adult    Likelihood
	Violence Likelihood
	Racy     Likelihood
}

// Objectionable reports whether any category reaches LIKELY or above.
func (r SafeSearchResult) Objectionable() bool {
	return r.Adult >= LikelihoodLikely || r.Violence >= LikelihoodLikely || r.Racy >= LikelihoodLikely
}
