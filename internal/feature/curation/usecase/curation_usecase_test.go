package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"wallpaper_backend/internal/feature/curation/domain/entity"
)

// mockDetector is a mock implementation of the SafeSearchDetector interface.
type mockDetector struct {
	DetectFunc func(ctx context.Context, imageURL string) (*entity.SafeSearchResult, error)
}

func (m *mockDetector) Detect(ctx context.Context, imageURL string) (*entity.SafeSearchResult, error) {
	if m.DetectFunc != nil {
		return m.DetectFunc(ctx, imageURL)
	}
	return &entity.SafeSearchResult{}, nil
}

// mockTagger is a mock implementation of the TagGenerator interface.
type mockTagger struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockTagger) Generate(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", nil
}

func TestCurationUsecase_Review(t *testing.T) {
	tests := []struct {
		name   string
		result entity.SafeSearchResult
		wantOK bool
	}{
		{name: "clean image passes", result: entity.SafeSearchResult{Adult: entity.LikelihoodVeryUnlikely}, wantOK: true},
		{name: "possible is still acceptable", result: entity.SafeSearchResult{Racy: entity.LikelihoodPossible}, wantOK: true},
		{name: "likely adult rejects", result: entity.SafeSearchResult{Adult: entity.LikelihoodLikely}, wantOK: false},
		{name: "very likely violence rejects", result: entity.SafeSearchResult{Violence: entity.LikelihoodVeryLikely}, wantOK: false},
		{name: "likely racy rejects", result: entity.SafeSearchResult{Racy: entity.LikelihoodLikely}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := &mockDetector{
				DetectFunc: func(ctx context.Context, imageURL string) (*entity.SafeSearchResult, error) {
					r := tt.result
					return &r, nil
				},
			}
			uc := NewCurationUsecase(detector, &mockTagger{})

			ok, err := uc.Review(context.Background(), "https://img.example/x.jpg")
			if err != nil {
				t.Fatalf("Review() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Review() = %v, want %v", ok, tt.wantOK)
			}
		})
	}

	t.Run("empty url is an error", func(t *testing.T) {
		uc := NewCurationUsecase(&mockDetector{}, &mockTagger{})
		if _, err := uc.Review(context.Background(), ""); err == nil {
			t.Error("expected an error for an empty url")
		}
	})

	t.Run("detector failure propagates", func(t *testing.T) {
		detector := &mockDetector{
			DetectFunc: func(ctx context.Context, imageURL string) (*entity.SafeSearchResult, error) {
				return nil, errors.New("api unreachable")
			},
		}
		uc := NewCurationUsecase(detector, &mockTagger{})

		if _, err := uc.Review(context.Background(), "https://img.example/x.jpg"); err == nil {
			t.Error("expected the detector error to propagate")
		}
	})
}

func TestCurationUsecase_SuggestTags(t *testing.T) {
	t.Run("parses a comma separated response", func(t *testing.T) {
		tagger := &mockTagger{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "Misty Mountains") {
					t.Errorf("prompt should contain the title, got %q", prompt)
				}
				return "Mountains, fog, NATURE,  minimal ", nil
			},
		}
		uc := NewCurationUsecase(&mockDetector{}, tagger)

		tags, err := uc.SuggestTags(context.Background(), "Misty Mountains")
		if err != nil {
			t.Fatalf("SuggestTags() error = %v", err)
		}
		want := []string{"mountains", "fog", "nature", "minimal"}
		if !reflect.DeepEqual(tags, want) {
			t.Errorf("SuggestTags() = %v, want %v", tags, want)
		}
	})

	t.Run("handles bulleted multi-line responses and duplicates", func(t *testing.T) {
		tagger := &mockTagger{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "- ocean\n- waves\n- ocean\n- #blue", nil
			},
		}
		uc := NewCurationUsecase(&mockDetector{}, tagger)

		tags, err := uc.SuggestTags(context.Background(), "Sea")
		if err != nil {
			t.Fatalf("SuggestTags() error = %v", err)
		}
		want := []string{"ocean", "waves", "blue"}
		if !reflect.DeepEqual(tags, want) {
			t.Errorf("SuggestTags() = %v, want %v", tags, want)
		}
	})

	t.Run("caps the tag count", func(t *testing.T) {
		tagger := &mockTagger{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "a,b,c,d,e,f,g,h,i,j,k", nil
			},
		}
		uc := NewCurationUsecase(&mockDetector{}, tagger)

		tags, err := uc.SuggestTags(context.Background(), "Alphabet")
		if err != nil {
			t.Fatalf("SuggestTags() error = %v", err)
		}
		if len(tags) != MaxTags {
			t.Errorf("len(tags) = %d, want %d", len(tags), MaxTags)
		}
	})

	t.Run("empty title is an error", func(t *testing.T) {
		uc := NewCurationUsecase(&mockDetector{}, &mockTagger{})
		if _, err := uc.SuggestTags(context.Background(), ""); err == nil {
			t.Error("expected an error for an empty title")
		}
	})

	t.Run("overlong title is an error", func(t *testing.T) {
		uc := NewCurationUsecase(&mockDetector{}, &mockTagger{})
		if _, err := uc.SuggestTags(context.Background(), strings.Repeat("x", MaxTitleLength+1)); err == nil {
			t.Error("expected an error for an overlong title")
		}
	})

	t.Run("generator failure propagates", func(t *testing.T) {
		tagger := &mockTagger{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}
		uc := NewCurationUsecase(&mockDetector{}, tagger)

		if _, err := uc.SuggestTags(context.Background(), "Sea"); err == nil {
			t.Error("expected the generator error to propagate")
		}
	})
}
