package service

import (
	"context"
	"fmt"
	"log"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/repository"
)

// PlaceAnalysisService 1つの場所に対する解析パイプラインを組み立てるサービス
// ジオコーディング → グリッド生成 → 道路スナップ → 経路行列の順に同期実行する
// roadsProviderがnilの場合は点の生成のみを行う「経路なしモード」になる
// （認証情報を渡さない構成は正当な設定であり、エラーではない）
type PlaceAnalysisService struct {
	geocodingProvider  repository.GeocodingProvider
	roadsProvider      repository.RoadsProvider
	directionsProvider repository.DirectionsProvider
	sampler            *GridSampler
	granularity        int
	maxRoutePoints     int
}

// NewPlaceAnalysisService 新しいPlaceAnalysisServiceを生成する
// maxRoutePointsは経路行列に渡す有効点数の上限（0以下で無制限）
// 経路リクエスト数は点数の2乗で増えるため、上流での絞り込みとしてここで切り詰める
func NewPlaceAnalysisService(
	geocoder repository.GeocodingProvider,
	roads repository.RoadsProvider,
	directions repository.DirectionsProvider,
	granularity int,
	maxRoutePoints int,
) *PlaceAnalysisService {
	return &PlaceAnalysisService{
		geocodingProvider:  geocoder,
		roadsProvider:      roads,
		directionsProvider: directions,
		sampler:            NewGridSampler(),
		granularity:        granularity,
		maxRoutePoints:     maxRoutePoints,
	}
}

// BuildPlaceAnalysis 場所名から解析の集約を構築する
// グリッド点が0件の場合は設定エラーとして中断する（静かに空の結果を返さない）
func (s *PlaceAnalysisService) BuildPlaceAnalysis(ctx context.Context, name string) (*model.PlaceAnalysis, error) {
	place, err := s.geocodingProvider.Geocode(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("ジオコーディングに失敗 (%s): %w", name, err)
	}
	log.Printf("📍 場所を解決: %s (osm_id=%d)", place.DisplayName, place.OsmID)

	gridPoints, err := s.sampler.Sample(place.Polygon, s.granularity)
	if err != nil {
		return nil, fmt.Errorf("グリッド生成に失敗 (%s): %w", name, err)
	}
	if len(gridPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", place, model.ErrNoGridPoints)
	}
	log.Printf("🗺️ グリッド点を生成: %d件 (分割数: %d)", len(gridPoints), s.granularity)

	analysis := &model.PlaceAnalysis{
		Place:      place,
		GridPoints: gridPoints,
	}

	if s.roadsProvider == nil {
		log.Printf("ℹ️ 経路APIの認証情報がないため点の生成のみで終了します")
		return analysis, nil
	}

	validator := NewRoadValidator(s.roadsProvider)
	snapResults, err := validator.Validate(ctx, gridPoints)
	if err != nil {
		return nil, fmt.Errorf("道路スナップに失敗 (%s): %w", name, err)
	}
	analysis.SnapResults = snapResults

	validPoints := analysis.ValidPoints()
	if len(validPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", place, model.ErrNoValidPoints)
	}
	log.Printf("🛣️ 道路スナップ完了: %d/%d件が有効", len(validPoints), len(gridPoints))

	if s.directionsProvider == nil {
		return analysis, nil
	}

	if s.maxRoutePoints > 0 && len(validPoints) > s.maxRoutePoints {
		// 先頭からの決定的な切り詰め（同じ入力なら常に同じ部分集合）
		log.Printf("✂️ 有効点を%d件に切り詰めます (元: %d件)", s.maxRoutePoints, len(validPoints))
		validPoints = validPoints[:s.maxRoutePoints]
	}

	builder := NewRouteMatrixBuilder(s.directionsProvider)
	routes, err := builder.BuildMatrix(ctx, place.OsmID, validPoints)
	if err != nil {
		return nil, fmt.Errorf("経路行列の構築に失敗 (%s): %w", name, err)
	}
	analysis.Routes = routes

	return analysis, nil
}
