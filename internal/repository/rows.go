package repository

import (
	"TurnSeq-App/internal/domain/model"
)

// 保存用の行構造体
// フィールドの並びがそのまま列順になる（呼び出し側スキーマ）
// 3テーブルとも場所ID（osm_id）で結合でき、点と経路はグリッドインデックスで結合できる

// PlaceRow placesテーブルの1行
type PlaceRow struct {
	PlaceID     int64   `json:"place_id" db:"place_id"`
	Name        string  `json:"name" db:"name"`
	DisplayName string  `json:"display_name" db:"display_name"`
	West        float64 `json:"bbox_west" db:"bbox_west"`
	South       float64 `json:"bbox_south" db:"bbox_south"`
	East        float64 `json:"bbox_east" db:"bbox_east"`
	North       float64 `json:"bbox_north" db:"bbox_north"`
	Boundary    string  `json:"boundary_wkt" db:"boundary_wkt"`
}

// PointRow place_pointsテーブルの1行
// スナップできなかった点はsnapped_lat/snapped_lngがnullのまま保存される
type PointRow struct {
	PlaceID    int64    `json:"place_id" db:"place_id"`
	GridIndex  int      `json:"grid_index" db:"grid_index"`
	GridLat    float64  `json:"grid_lat" db:"grid_lat"`
	GridLng    float64  `json:"grid_lng" db:"grid_lng"`
	SnappedLat *float64 `json:"snapped_lat" db:"snapped_lat"`
	SnappedLng *float64 `json:"snapped_lng" db:"snapped_lng"`
}

// RouteRow place_routesテーブルの1行
type RouteRow struct {
	PlaceID          int64    `json:"place_id" db:"place_id"`
	OriginIndex      int      `json:"origin_index" db:"origin_index"`
	DestinationIndex int      `json:"destination_index" db:"destination_index"`
	Maneuvers        []string `json:"maneuvers" db:"maneuvers"`
	Turns            []string `json:"turns" db:"turns"`
	DoubleTurns      []string `json:"double_turns" db:"double_turns"`
}

// ProjectPlaceRow 集約から場所の行を射影する
func ProjectPlaceRow(analysis *model.PlaceAnalysis) PlaceRow {
	place := analysis.Place
	return PlaceRow{
		PlaceID:     place.OsmID,
		Name:        place.Name,
		DisplayName: place.DisplayName,
		West:        place.BBox.West,
		South:       place.BBox.South,
		East:        place.BBox.East,
		North:       place.BBox.North,
		Boundary:    PolygonToWKT(place.Polygon),
	}
}

// ProjectPointRows 集約から点の行を射影する
// グリッド点とスナップ結果のインデックス対応をそのまま行に写す
func ProjectPointRows(analysis *model.PlaceAnalysis) []PointRow {
	rows := make([]PointRow, 0, len(analysis.GridPoints))
	for i, grid := range analysis.GridPoints {
		row := PointRow{
			PlaceID:   analysis.Place.OsmID,
			GridIndex: i,
			GridLat:   grid.Lat,
			GridLng:   grid.Lng,
		}
		if i < len(analysis.SnapResults) {
			if snapped := analysis.SnapResults[i].Snapped; snapped != nil {
				lat, lng := snapped.Lat, snapped.Lng
				row.SnappedLat = &lat
				row.SnappedLng = &lng
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ProjectRouteRows 集約から経路の行を射影する
func ProjectRouteRows(analysis *model.PlaceAnalysis) []RouteRow {
	rows := make([]RouteRow, 0, len(analysis.Routes))
	for _, route := range analysis.Routes {
		rows = append(rows, RouteRow{
			PlaceID:          route.PlaceID,
			OriginIndex:      route.OriginIndex,
			DestinationIndex: route.DestinationIndex,
			Maneuvers:        route.Maneuvers,
			Turns:            turnsToStrings(route.Turns),
			DoubleTurns:      doubleTurnsToStrings(route.DoubleTurns),
		})
	}
	return rows
}

func turnsToStrings(turns []model.Turn) []string {
	out := make([]string, len(turns))
	for i, t := range turns {
		out[i] = string(t)
	}
	return out
}

func doubleTurnsToStrings(doubles []model.DoubleTurn) []string {
	out := make([]string, len(doubles))
	for i, d := range doubles {
		out[i] = string(d)
	}
	return out
}
