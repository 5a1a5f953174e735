package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"TurnSeq-App/internal/domain/model"
)

// LatLngToPoint model.LatLng を orb.Point に変換（orbは経度・緯度の順）
func LatLngToPoint(p model.LatLng) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// PointToLatLng orb.Point を model.LatLng に変換
func PointToLatLng(p orb.Point) model.LatLng {
	return model.LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// BBoxToBound model.BoundingBox を orb.Bound に変換
func BBoxToBound(b model.BoundingBox) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// PolygonToWKT 場所の境界ポリゴンをWKT文字列として出力（DBのgeometry列用）
func PolygonToWKT(polygon orb.MultiPolygon) string {
	return wkt.MarshalString(polygon)
}

// BBoxToWKT 外接矩形をWKTポリゴン文字列として出力
func BBoxToWKT(b model.BoundingBox) string {
	return wkt.MarshalString(BBoxToBound(b).ToPolygon())
}
