package repository

import (
	"context"

	"TurnSeq-App/internal/domain/model"
)

// AnalysisCacheRepository 要約統計のキャッシュ（API応答用）
type AnalysisCacheRepository interface {
	SaveSummary(ctx context.Context, summary *model.AnalysisSummary, ttlHours int) error
	GetSummary(ctx context.Context, placeID int64) (*model.AnalysisSummary, error)
}
