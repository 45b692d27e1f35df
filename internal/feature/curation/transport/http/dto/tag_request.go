// Package dto defines the request bodies of the curation endpoints.
package dto

// TagSuggestionRequest is the POST /curation/tags body.
type TagSuggestionRequest struct {
	Title string `json:"title"`
}
