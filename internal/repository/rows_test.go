package repository

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurnSeq-App/internal/domain/model"
)

func sampleAnalysis() *model.PlaceAnalysis {
	snapped := model.LatLng{Lat: 0.501, Lng: 0.499}
	return &model.PlaceAnalysis{
		Place: &model.Place{
			OsmID:       42,
			Name:        "Testville",
			DisplayName: "Testville, Test Prefecture",
			BBox:        model.BoundingBox{West: 0, South: 0, East: 1, North: 1},
			Polygon: orb.MultiPolygon{
				orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
			},
		},
		GridPoints: []model.LatLng{
			{Lat: 0, Lng: 0},
			{Lat: 0.5, Lng: 0.5},
			{Lat: 1, Lng: 1},
		},
		SnapResults: []model.SnapResult{
			{}, // 道路なし
			{Snapped: &snapped},
			{}, // 道路なし
		},
		Routes: []model.RouteEntry{
			{
				PlaceID:          42,
				OriginIndex:      1,
				DestinationIndex: 2,
				Maneuvers:        []string{"TURN_LEFT", "STRAIGHT", "TURN_RIGHT"},
				Turns:            []model.Turn{"L", "R"},
				DoubleTurns:      []model.DoubleTurn{"LR"},
			},
		},
	}
}

func TestProjectPlaceRow(t *testing.T) {
	row := ProjectPlaceRow(sampleAnalysis())

	assert.Equal(t, int64(42), row.PlaceID)
	assert.Equal(t, "Testville", row.Name)
	assert.Equal(t, 0.0, row.West)
	assert.Equal(t, 0.0, row.South)
	assert.Equal(t, 1.0, row.East)
	assert.Equal(t, 1.0, row.North)
	assert.Contains(t, row.Boundary, "MULTIPOLYGON")
}

func TestProjectPointRows_インデックス対応を保つ(t *testing.T) {
	rows := ProjectPointRows(sampleAnalysis())
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, int64(42), row.PlaceID)
		assert.Equal(t, i, row.GridIndex)
	}

	// スナップできなかった点はnullのまま
	assert.Nil(t, rows[0].SnappedLat)
	assert.Nil(t, rows[2].SnappedLat)
	require.NotNil(t, rows[1].SnappedLat)
	assert.Equal(t, 0.501, *rows[1].SnappedLat)
	assert.Equal(t, 0.499, *rows[1].SnappedLng)
}

func TestProjectPointRows_経路なしモード(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.SnapResults = nil

	rows := ProjectPointRows(analysis)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Nil(t, row.SnappedLat)
		assert.Nil(t, row.SnappedLng)
	}
}

func TestProjectRouteRows(t *testing.T) {
	rows := ProjectRouteRows(sampleAnalysis())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(42), row.PlaceID)
	assert.Equal(t, 1, row.OriginIndex)
	assert.Equal(t, 2, row.DestinationIndex)
	assert.Equal(t, []string{"TURN_LEFT", "STRAIGHT", "TURN_RIGHT"}, row.Maneuvers)
	assert.Equal(t, []string{"L", "R"}, row.Turns)
	assert.Equal(t, []string{"LR"}, row.DoubleTurns)
}
