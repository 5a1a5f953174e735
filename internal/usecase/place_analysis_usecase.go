package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/repository"
	"TurnSeq-App/internal/domain/service"
)

type PlaceAnalysisUseCase interface {
	// RunAnalysis は場所名に対してパイプラインを実行し、保存・キャッシュして要約を返す
	RunAnalysis(ctx context.Context, placeName string) (*model.AnalysisSummary, error)

	// GetAnalysisSummary は指定された場所IDの要約統計をキャッシュから取得する
	GetAnalysisSummary(ctx context.Context, placeID int64) (*model.AnalysisSummary, error)
}

// placeAnalysisUseCaseImpl はPlaceAnalysisUseCaseの実装
// storeとcacheはどちらもnil許容（保存先なしのドライラン構成を許す）
type placeAnalysisUseCaseImpl struct {
	analysisService *service.PlaceAnalysisService
	store           repository.PlacesStoreRepository
	cache           repository.AnalysisCacheRepository
	summaryTTLHours int
}

// NewPlaceAnalysisUseCase 新しいPlaceAnalysisUseCaseインスタンスを作成
func NewPlaceAnalysisUseCase(
	analysisService *service.PlaceAnalysisService,
	store repository.PlacesStoreRepository,
	cache repository.AnalysisCacheRepository,
	summaryTTLHours int,
) PlaceAnalysisUseCase {
	return &placeAnalysisUseCaseImpl{
		analysisService: analysisService,
		store:           store,
		cache:           cache,
		summaryTTLHours: summaryTTLHours,
	}
}

// RunAnalysis は場所名に対してパイプラインを実行し、保存・キャッシュして要約を返す
func (u *placeAnalysisUseCaseImpl) RunAnalysis(ctx context.Context, placeName string) (*model.AnalysisSummary, error) {
	log.Printf("🚀 解析開始: %s", placeName)

	// Step 1: パイプラインを実行して集約を構築
	analysis, err := u.analysisService.BuildPlaceAnalysis(ctx, placeName)
	if err != nil {
		return nil, err
	}

	// Step 2: ストアへ保存（同じ場所IDが既にあれば重複挿入を避ける）
	if u.store != nil {
		exists, err := u.store.HasPlace(ctx, analysis.Place.OsmID)
		if err != nil {
			return nil, fmt.Errorf("保存済みデータの確認に失敗: %w", err)
		}
		if exists {
			log.Printf("ℹ️ 場所ID %d は保存済みのためスキップします", analysis.Place.OsmID)
		} else {
			if err := u.store.SaveAnalysis(ctx, analysis); err != nil {
				return nil, fmt.Errorf("解析結果の保存に失敗: %w", err)
			}
			log.Printf("💾 解析結果を保存しました (場所ID: %d)", analysis.Place.OsmID)
		}
	}

	// Step 3: 要約統計を計算
	summary, err := u.summarize(analysis)
	if err != nil {
		return nil, err
	}

	// Step 4: 要約をキャッシュ
	if u.cache != nil {
		if err := u.cache.SaveSummary(ctx, summary, u.summaryTTLHours); err != nil {
			return nil, fmt.Errorf("要約統計のキャッシュに失敗: %w", err)
		}
	}

	log.Printf("✅ 解析完了: %s (経路%d件, 平均交替率%.3f)",
		analysis.Place.DisplayName, summary.RouteCount, summary.MeanFraction)
	return summary, nil
}

// GetAnalysisSummary は指定された場所IDの要約統計をキャッシュから取得する
func (u *placeAnalysisUseCaseImpl) GetAnalysisSummary(ctx context.Context, placeID int64) (*model.AnalysisSummary, error) {
	if u.cache == nil {
		return nil, errors.New("要約キャッシュが構成されていません")
	}
	return u.cache.GetSummary(ctx, placeID)
}

// summarize 集約から要約統計を組み立てる
// 経路が1件もない構成（点の生成のみ）では件数だけを持つ要約になる
func (u *placeAnalysisUseCaseImpl) summarize(analysis *model.PlaceAnalysis) (*model.AnalysisSummary, error) {
	summary := &model.AnalysisSummary{
		PlaceID:         analysis.Place.OsmID,
		PlaceName:       analysis.Place.Name,
		DisplayName:     analysis.Place.DisplayName,
		GridPointCount:  len(analysis.GridPoints),
		ValidPointCount: len(analysis.ValidPoints()),
		RouteCount:      len(analysis.Routes),
		CreatedAt:       time.Now(),
	}

	if len(analysis.Routes) == 0 {
		return summary, nil
	}

	mean, stdDev, ciLower, ciUpper, usable, err := service.SummarizeRoutes(analysis.Routes)
	if err != nil {
		return nil, fmt.Errorf("要約統計の計算に失敗: %w", err)
	}
	summary.UsableRoutes = usable
	summary.MeanFraction = mean
	summary.StdDev = stdDev
	summary.CILower = ciLower
	summary.CIUpper = ciUpper
	summary.Confidence = 0.95
	return summary, nil
}
