package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurnSeq-App/internal/domain/model"
)

func TestRoadValidator_Validate_インデックス対応を保つ(t *testing.T) {
	// 緯度0.5の点だけ「道路なし」になるプロバイダ
	roads := &fakeRoadsProvider{
		snapFn: func(point model.LatLng) (*model.LatLng, error) {
			if point.Lat == 0.5 {
				return nil, nil
			}
			snapped := model.LatLng{Lat: point.Lat + 0.001, Lng: point.Lng + 0.001}
			return &snapped, nil
		},
	}
	validator := NewRoadValidator(roads)

	points := []model.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 0.5, Lng: 0},
		{Lat: 1, Lng: 0},
	}

	results, err := validator.Validate(context.Background(), points)
	require.NoError(t, err)

	// 出力は入力と同じ長さで、見つからなかった点はnilプレースホルダのまま残る
	require.Len(t, results, len(points))
	assert.True(t, results[0].Found())
	assert.False(t, results[1].Found())
	assert.True(t, results[2].Found())
	assert.Equal(t, model.LatLng{Lat: 1.001, Lng: 0.001}, *results[2].Snapped)
	assert.Equal(t, len(points), roads.callCount)
}

func TestRoadValidator_Validate_通信エラーで全体が失敗する(t *testing.T) {
	roads := &fakeRoadsProvider{
		snapFn: func(point model.LatLng) (*model.LatLng, error) {
			if point.Lat == 0.5 {
				return nil, errTransport
			}
			snapped := point
			return &snapped, nil
		},
	}
	validator := NewRoadValidator(roads)

	points := []model.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 0.5, Lng: 0},
		{Lat: 1, Lng: 0},
	}

	results, err := validator.Validate(context.Background(), points)
	assert.ErrorIs(t, err, errTransport)
	// 部分的な結果は返さない
	assert.Nil(t, results)
}

func TestPlaceAnalysis_ValidPoints_元のインデックスを持ち越す(t *testing.T) {
	snapped := func(lat, lng float64) model.SnapResult {
		return model.SnapResult{Snapped: &model.LatLng{Lat: lat, Lng: lng}}
	}

	analysis := &model.PlaceAnalysis{
		SnapResults: []model.SnapResult{
			snapped(0, 0),
			{}, // 道路なし
			{}, // 道路なし
			snapped(3, 3),
		},
	}

	valid := analysis.ValidPoints()
	require.Len(t, valid, 2)
	assert.Equal(t, 0, valid[0].GridIndex)
	assert.Equal(t, 3, valid[1].GridIndex)
	assert.Equal(t, model.LatLng{Lat: 3, Lng: 3}, valid[1].Point)
}
