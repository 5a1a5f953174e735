package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"TurnSeq-App/internal/domain/model"
)

// テスト用のフェイクプロバイダ群
// 外部APIを呼ばずにパイプラインの挙動だけを検証する

// fakeGeocodingProvider 固定のPlaceを返すジオコーダ
type fakeGeocodingProvider struct {
	place *model.Place
	err   error
}

func (f *fakeGeocodingProvider) Geocode(ctx context.Context, name string) (*model.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.place, nil
}

// fakeRoadsProvider 座標ごとにスナップ結果を切り替えられるプロバイダ
type fakeRoadsProvider struct {
	// snapFnがnilなら入力座標をそのまま返す（全点スナップ成功）
	snapFn    func(point model.LatLng) (*model.LatLng, error)
	callCount int
}

func (f *fakeRoadsProvider) SnapToRoad(ctx context.Context, point model.LatLng) (*model.LatLng, error) {
	f.callCount++
	if f.snapFn != nil {
		return f.snapFn(point)
	}
	snapped := point
	return &snapped, nil
}

// fakeDirectionsProvider 固定のマニューバ列を返すプロバイダ
type fakeDirectionsProvider struct {
	maneuvers []string
	err       error
	calls     []string
}

func (f *fakeDirectionsProvider) ComputeRoute(ctx context.Context, origin, destination model.LatLng) ([]string, error) {
	if origin.Equal(destination) {
		return nil, model.ErrSameLocation
	}
	f.calls = append(f.calls, fmt.Sprintf("%v->%v", origin, destination))
	if f.err != nil {
		return nil, f.err
	}
	return f.maneuvers, nil
}

var errTransport = errors.New("transport failure")

// unitSquare (0,0)-(1,1)の正方形ポリゴン
func unitSquare() orb.MultiPolygon {
	return orb.MultiPolygon{
		orb.Polygon{
			orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		},
	}
}

// testPlace unitSquareを境界に持つテスト用のPlace
func testPlace() *model.Place {
	return &model.Place{
		OsmID:       12345,
		Name:        "Testville",
		DisplayName: "Testville, Test Prefecture",
		BBox:        model.BoundingBox{West: 0, South: 0, East: 1, North: 1},
		Polygon:     unitSquare(),
	}
}
