// Package usecase implements the business logic of the curation feature.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"wallpaper_backend/internal/feature/curation/domain/entity"
)

const (
	// TagPromptTemplate is the prompt used to generate wallpaper tags.
	TagPromptTemplate = "Suggest up to %d short, lowercase, comma-separated descriptive tags for a wallpaper titled %q. Reply with the tags only."
	// MaxTags caps the number of tags returned per suggestion.
	MaxTags = 8
	// MaxTitleLength is the maximum title length in runes.
	MaxTitleLength = 200
)

// SafeSearchDetector screens an image URL for objectionable content.
// Following Go convention, the interface is defined by the consumer (usecase).
type SafeSearchDetector interface {
	// Detect returns the moderation verdicts for the image at the given URL.
	Detect(ctx context.Context, imageURL string) (*entity.SafeSearchResult, error)
}

// TagGenerator produces free-form text from a prompt.
type TagGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type curationUsecase struct {
	detector SafeSearchDetector
	tagger   TagGenerator
}

// NewCurationUsecase creates a new curationUsecase instance.
func NewCurationUsecase(detector SafeSearchDetector, tagger TagGenerator) *curationUsecase {
	return &curationUsecase{detector: detector, tagger: tagger}
}

// Review reports whether the image at the given URL is acceptable.
func (u *curationUsecase) Review(ctx context.Context, imageURL string) (bool, error) {
	if imageURL == "" {
		return false, fmt.Errorf("image url is required")
	}

	result, err := u.detector.Detect(ctx, imageURL)
	if err != nil {
		return false, fmt.Errorf("safe search detection failed for %q: %w", imageURL, err)
	}
	return !result.Objectionable(), nil
}

// SuggestTags generates descriptive tags for a wallpaper title.
func (u *curationUsecase) SuggestTags(ctx context.Context, title string) ([]string, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}

	prompt := fmt.Sprintf(TagPromptTemplate, MaxTags, title)
	raw, err := u.tagger.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("tag generation failed for %q: %w", title, err)
	}
	return parseTags(raw), nil
}

// parseTags splits a model response on commas and newlines and normalizes
// each fragment into a plain lowercase tag.
func parseTags(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	tags := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tag := strings.ToLower(strings.Trim(strings.TrimSpace(f), "#.-* "))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}
