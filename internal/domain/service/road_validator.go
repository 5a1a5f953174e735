package service

import (
	"context"
	"fmt"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/repository"
)

// RoadValidator グリッド点を道路上の座標へスナップする検証器
// 出力は入力と同じ長さ・同じ並び順で、見つからなかった点はnilプレースホルダとして残す
// プレースホルダの除去はValidPointsで1回だけ行い、元のインデックスを持ち越す
type RoadValidator struct {
	roadsProvider repository.RoadsProvider
}

func NewRoadValidator(provider repository.RoadsProvider) *RoadValidator {
	return &RoadValidator{roadsProvider: provider}
}

// Validate 各グリッド点をスナップし、インデックス対応を保った結果列を返す
// 1点でも通信エラーが起きた場合は検証全体を失敗させる（部分的な成功は返さない）
func (v *RoadValidator) Validate(ctx context.Context, points []model.LatLng) ([]model.SnapResult, error) {
	results := make([]model.SnapResult, 0, len(points))
	for i, point := range points {
		snapped, err := v.roadsProvider.SnapToRoad(ctx, point)
		if err != nil {
			return nil, fmt.Errorf("グリッド点%dのスナップに失敗: %w", i, err)
		}
		results = append(results, model.SnapResult{Snapped: snapped})
	}
	return results, nil
}
