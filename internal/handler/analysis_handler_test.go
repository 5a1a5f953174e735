package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurnSeq-App/internal/domain/model"
)

type fakeAnalysisUseCase struct {
	summary *model.AnalysisSummary
	err     error
}

func (f *fakeAnalysisUseCase) RunAnalysis(ctx context.Context, placeName string) (*model.AnalysisSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func (f *fakeAnalysisUseCase) GetAnalysisSummary(ctx context.Context, placeID int64) (*model.AnalysisSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func setupRouter(uc *fakeAnalysisUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalysisHandler(uc)
	r.POST("/api/analyses", h.PostAnalysis)
	r.GET("/api/analyses/:place_id", h.GetAnalysis)
	return r
}

func TestPostAnalysis(t *testing.T) {
	summary := &model.AnalysisSummary{PlaceID: 42, PlaceName: "Testville", MeanFraction: 0.5}

	t.Run("正常系", func(t *testing.T) {
		router := setupRouter(&fakeAnalysisUseCase{summary: summary})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/analyses",
			strings.NewReader(`{"place_name": "Testville"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got model.AnalysisSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(42), got.PlaceID)
		assert.Equal(t, 0.5, got.MeanFraction)
	})

	t.Run("place_name未指定は400", func(t *testing.T) {
		router := setupRouter(&fakeAnalysisUseCase{summary: summary})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/analyses", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("場所が見つからない場合は404", func(t *testing.T) {
		router := setupRouter(&fakeAnalysisUseCase{
			err: fmt.Errorf("Nowhere: %w", model.ErrPlaceNotFound),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/analyses",
			strings.NewReader(`{"place_name": "Nowhere"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetAnalysis(t *testing.T) {
	summary := &model.AnalysisSummary{PlaceID: 42, PlaceName: "Testville"}

	t.Run("正常系", func(t *testing.T) {
		router := setupRouter(&fakeAnalysisUseCase{summary: summary})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/analyses/42", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("不正なIDは400", func(t *testing.T) {
		router := setupRouter(&fakeAnalysisUseCase{summary: summary})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/analyses/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
