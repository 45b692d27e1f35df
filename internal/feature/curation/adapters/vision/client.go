// Package vision provides a SafeSearch moderation client backed by the
// Google Cloud Vision API.
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"wallpaper_backend/internal/feature/curation/domain/entity"
	"wallpaper_backend/internal/feature/curation/usecase"
)

// SafeSearchClient screens image URLs through Vision SafeSearch annotation.
type SafeSearchClient struct {
	client *gvision.ImageAnnotatorClient
}

// Compile-time check that SafeSearchClient implements SafeSearchDetector.
var _ usecase.SafeSearchDetector = (*SafeSearchClient)(nil)

// NewSafeSearchClient creates a new SafeSearchClient using ADC credentials.
func NewSafeSearchClient(ctx context.Context) (*SafeSearchClient, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &SafeSearchClient{client: client}, nil
}

// Close releases the Vision API client.
func (v *SafeSearchClient) Close() error {
	return v.client.Close()
}

// Detect runs SafeSearch annotation over the image at the given URL.
func (v *SafeSearchClient) Detect(ctx context.Context, imageURL string) (*entity.SafeSearchResult, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{
					Source: &visionpb.ImageSource{ImageUri: imageURL},
				},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 || resp.Responses[0].SafeSearchAnnotation == nil {
		return nil, fmt.Errorf("vision API returned no safe search annotation")
	}
	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	ann := resp.Responses[0].SafeSearchAnnotation
	return &entity.SafeSearchResult{
		Adult:    entity.Likelihood(ann.Adult),
		Violence: entity.Likelihood(ann.Violence),
		Racy:     entity.Likelihood(ann.Racy),
	}, nil
}
