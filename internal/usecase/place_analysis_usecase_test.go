package usecase

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/service"
)

type fakeGeocoder struct{ place *model.Place }

func (f *fakeGeocoder) Geocode(ctx context.Context, name string) (*model.Place, error) {
	return f.place, nil
}

type fakeRoads struct{}

func (f *fakeRoads) SnapToRoad(ctx context.Context, point model.LatLng) (*model.LatLng, error) {
	snapped := point
	return &snapped, nil
}

type fakeDirections struct{ maneuvers []string }

func (f *fakeDirections) ComputeRoute(ctx context.Context, origin, destination model.LatLng) ([]string, error) {
	return f.maneuvers, nil
}

type fakeStore struct {
	existing  bool
	saved     []*model.PlaceAnalysis
	hasCalled int
}

func (f *fakeStore) HasPlace(ctx context.Context, placeID int64) (bool, error) {
	f.hasCalled++
	return f.existing, nil
}

func (f *fakeStore) SaveAnalysis(ctx context.Context, analysis *model.PlaceAnalysis) error {
	f.saved = append(f.saved, analysis)
	return nil
}

type fakeCache struct {
	summaries map[int64]*model.AnalysisSummary
}

func (f *fakeCache) SaveSummary(ctx context.Context, summary *model.AnalysisSummary, ttlHours int) error {
	if f.summaries == nil {
		f.summaries = make(map[int64]*model.AnalysisSummary)
	}
	f.summaries[summary.PlaceID] = summary
	return nil
}

func (f *fakeCache) GetSummary(ctx context.Context, placeID int64) (*model.AnalysisSummary, error) {
	return f.summaries[placeID], nil
}

func testService(geocoder *fakeGeocoder) *service.PlaceAnalysisService {
	return service.NewPlaceAnalysisService(
		geocoder,
		&fakeRoads{},
		&fakeDirections{maneuvers: []string{"TURN_LEFT", "TURN_RIGHT", "TURN_RIGHT"}},
		2, 0,
	)
}

func squarePlace() *model.Place {
	return &model.Place{
		OsmID:       42,
		Name:        "Testville",
		DisplayName: "Testville, Test Prefecture",
		BBox:        model.BoundingBox{West: 0, South: 0, East: 1, North: 1},
		Polygon: orb.MultiPolygon{
			orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
		},
	}
}

func TestRunAnalysis_保存とキャッシュまで通す(t *testing.T) {
	store := &fakeStore{}
	cache := &fakeCache{}
	uc := NewPlaceAnalysisUseCase(testService(&fakeGeocoder{place: squarePlace()}), store, cache, 24)

	summary, err := uc.RunAnalysis(context.Background(), "Testville")
	require.NoError(t, err)

	assert.Equal(t, int64(42), summary.PlaceID)
	assert.Equal(t, 9, summary.GridPointCount)
	assert.Equal(t, 9, summary.ValidPointCount)
	assert.Equal(t, 72, summary.RouteCount)
	assert.Equal(t, 72, summary.UsableRoutes)
	// L,R,R → LR,RR → 交替率0.5がすべての経路で共通
	assert.InDelta(t, 0.5, summary.MeanFraction, 1e-9)
	assert.Equal(t, 0.95, summary.Confidence)

	// ストアとキャッシュの両方に書かれていること
	require.Len(t, store.saved, 1)
	cached, err := uc.GetAnalysisSummary(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, summary, cached)
}

func TestRunAnalysis_保存済みの場所は重複挿入しない(t *testing.T) {
	store := &fakeStore{existing: true}
	uc := NewPlaceAnalysisUseCase(testService(&fakeGeocoder{place: squarePlace()}), store, nil, 24)

	_, err := uc.RunAnalysis(context.Background(), "Testville")
	require.NoError(t, err)

	assert.Equal(t, 1, store.hasCalled)
	assert.Empty(t, store.saved)
}

func TestRunAnalysis_ストアなしのドライラン(t *testing.T) {
	uc := NewPlaceAnalysisUseCase(testService(&fakeGeocoder{place: squarePlace()}), nil, nil, 24)

	summary, err := uc.RunAnalysis(context.Background(), "Testville")
	require.NoError(t, err)
	assert.Equal(t, 72, summary.RouteCount)
}

func TestGetAnalysisSummary_キャッシュ未構成はエラー(t *testing.T) {
	uc := NewPlaceAnalysisUseCase(testService(&fakeGeocoder{place: squarePlace()}), nil, nil, 24)

	_, err := uc.GetAnalysisSummary(context.Background(), 42)
	assert.Error(t, err)
}
