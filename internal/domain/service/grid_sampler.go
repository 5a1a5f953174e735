package service

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"TurnSeq-App/internal/domain/model"
)

// GridSampler 場所のポリゴンを格子点に分割するサンプラー
// 外接矩形をgranularity等分した格子を走査し、ポリゴンに含まれる点だけを残す
type GridSampler struct{}

func NewGridSampler() *GridSampler {
	return &GridSampler{}
}

// Sample 外接矩形を格子状に走査してポリゴン内の点を返す
// 走査順は経度メジャー・緯度マイナーのラスタ順で、上端は両軸とも含む（x <= maxx）
// そのため点数は最大で(granularity+1)^2になる
// 同じ入力に対して常に同じ順序・同じ点列を返す（乱数は使わない）
func (s *GridSampler) Sample(polygon orb.MultiPolygon, granularity int) ([]model.LatLng, error) {
	if granularity < 1 {
		return nil, fmt.Errorf("granularity=%d: %w", granularity, model.ErrInvalidGranularity)
	}

	bound := polygon.Bound()
	minX, minY := bound.Min.Lon(), bound.Min.Lat()
	maxX, maxY := bound.Max.Lon(), bound.Max.Lat()
	dx := (maxX - minX) / float64(granularity)
	dy := (maxY - minY) / float64(granularity)

	var points []model.LatLng
	for x := minX; x <= maxX; x += dx {
		for y := minY; y <= maxY; y += dy {
			candidate := orb.Point{x, y}
			if planar.MultiPolygonContains(polygon, candidate) {
				points = append(points, model.LatLng{Lat: y, Lng: x})
			}
			// 矩形が1点に退化している場合は1回で打ち切る
			if dy == 0 {
				break
			}
		}
		if dx == 0 {
			break
		}
	}

	return points, nil
}
