package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/usecase"
)

// AnalysisHandler は曲がりパターン解析APIのハンドラー
type AnalysisHandler struct {
	analysisUseCase usecase.PlaceAnalysisUseCase
}

// NewAnalysisHandler は新しいAnalysisHandlerインスタンスを作成
func NewAnalysisHandler(analysisUseCase usecase.PlaceAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUseCase: analysisUseCase,
	}
}

// AnalysisRequest 解析実行リクエストのボディ
type AnalysisRequest struct {
	PlaceName string `json:"place_name" validate:"required"`
}

// PostAnalysis は場所の解析を実行するエンドポイント
// POST /api/analyses
func (h *AnalysisHandler) PostAnalysis(c *gin.Context) {
	var req AnalysisRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if strings.TrimSpace(req.PlaceName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "place_nameは必須です",
		})
		return
	}

	// UseCase呼び出し
	summary, err := h.analysisUseCase.RunAnalysis(c.Request.Context(), req.PlaceName)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrPlaceNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error":   "解析の実行に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, summary)
}

// GetAnalysis はキャッシュ済みの要約統計を取得するエンドポイント
// GET /api/analyses/:place_id
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	placeID, err := strconv.ParseInt(c.Param("place_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "place_idは整数である必要があります",
		})
		return
	}

	summary, err := h.analysisUseCase.GetAnalysisSummary(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "要約統計が見つかりません",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
