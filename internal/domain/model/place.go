package model

import "github.com/paulmach/orb"

// LatLng 緯度経度を表す基本的な型（グリッド生成・経路検索などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Equal 同一座標かどうかを値で比較する
func (l LatLng) Equal(other LatLng) bool {
	return l.Lat == other.Lat && l.Lng == other.Lng
}

// BoundingBox 場所の外接矩形（西・南・東・北の順）
type BoundingBox struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// Place ジオコーディングで解決された場所を表すモデル
// OsmIDは外部サービスが払い出す安定IDで、保存時の重複判定キーになる
type Place struct {
	OsmID       int64            `json:"osm_id"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	BBox        BoundingBox      `json:"bbox"`
	Polygon     orb.MultiPolygon `json:"-"`
}

func (p *Place) String() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}
