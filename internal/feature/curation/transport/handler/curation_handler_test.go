package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCurationUsecase is a mock implementation of the CurationUsecase interface.
type mockCurationUsecase struct {
	SuggestTagsFunc func(ctx context.Context, title string) ([]string, error)
}

func (m *mockCurationUsecase) SuggestTags(ctx context.Context, title string) ([]string, error) {
	if m.SuggestTagsFunc != nil {
		return m.SuggestTagsFunc(ctx, title)
	}
	return nil, nil
}

// postTags sends a POST /curation/tags request through a fresh router.
func postTags(t *testing.T, uc CurationUsecase, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.POST("/curation/tags", NewCurationHandler(uc).SuggestTags)

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/curation/tags", bytes.NewBuffer(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurationHandler_SuggestTags(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		uc := &mockCurationUsecase{
			SuggestTagsFunc: func(ctx context.Context, title string) ([]string, error) {
				assert.Equal(t, "Misty Mountains", title)
				return []string{"mountains", "fog", "nature"}, nil
			},
		}

		w := postTags(t, uc, gin.H{"title": "Misty Mountains"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tags":["mountains","fog","nature"]}`, w.Body.String())
	})

	t.Run("failure: missing title", func(t *testing.T) {
		w := postTags(t, &mockCurationUsecase{}, gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing title"}`, w.Body.String())
	})

	t.Run("failure: generator unavailable", func(t *testing.T) {
		uc := &mockCurationUsecase{
			SuggestTagsFunc: func(ctx context.Context, title string) ([]string, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		w := postTags(t, uc, gin.H{"title": "Sea"})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"error":"Tag suggestion failed"}`, w.Body.String())
	})
}
