package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"TurnSeq-App/internal/domain/model"
)

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// NominatimGeocodingProvider はOpenStreetMap Nominatimを使用したジオコーディングの実装
// polygon_geojson=1で境界ポリゴンも同時に取得する
type NominatimGeocodingProvider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimGeocodingProvider は新しいプロバイダを生成する
func NewNominatimGeocodingProvider() *NominatimGeocodingProvider {
	return &NominatimGeocodingProvider{
		baseURL:    defaultNominatimBaseURL,
		userAgent:  "TurnSeq-App/1.0",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewNominatimGeocodingProviderWithBaseURL テスト用にエンドポイントを差し替えたプロバイダを生成する
func NewNominatimGeocodingProviderWithBaseURL(baseURL string) *NominatimGeocodingProvider {
	p := NewNominatimGeocodingProvider()
	p.baseURL = baseURL
	return p
}

// Geocode は場所名からPlaceを解決する
// 結果が0件の場合はmodel.ErrPlaceNotFoundを返す
func (n *NominatimGeocodingProvider) Geocode(ctx context.Context, name string) (*model.Place, error) {
	// 1. APIリクエストURLを構築
	params := url.Values{}
	params.Set("q", name)
	params.Set("format", "jsonv2")
	params.Set("polygon_geojson", "1")
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s?%s", n.baseURL, params.Encode())

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ステータス %s", model.ErrRemoteService, resp.Status)
	}

	// 3. JSONレスポンスをパース
	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%s: %w", name, model.ErrPlaceNotFound)
	}

	// 4. ドメインモデルに変換して返す
	return results[0].toPlace(name)
}

// --- Nominatimのレスポンスをパースするための構造体 ---

type nominatimResult struct {
	OsmID       int64             `json:"osm_id"`
	DisplayName string            `json:"display_name"`
	BoundingBox []string          `json:"boundingbox"` // [南, 北, 西, 東]の文字列
	GeoJSON     *geojson.Geometry `json:"geojson"`
}

func (r *nominatimResult) toPlace(name string) (*model.Place, error) {
	if len(r.BoundingBox) != 4 {
		return nil, fmt.Errorf("外接矩形の形式が不正です: %v", r.BoundingBox)
	}
	south, err := strconv.ParseFloat(r.BoundingBox[0], 64)
	if err != nil {
		return nil, fmt.Errorf("外接矩形のパースに失敗: %w", err)
	}
	north, err := strconv.ParseFloat(r.BoundingBox[1], 64)
	if err != nil {
		return nil, fmt.Errorf("外接矩形のパースに失敗: %w", err)
	}
	west, err := strconv.ParseFloat(r.BoundingBox[2], 64)
	if err != nil {
		return nil, fmt.Errorf("外接矩形のパースに失敗: %w", err)
	}
	east, err := strconv.ParseFloat(r.BoundingBox[3], 64)
	if err != nil {
		return nil, fmt.Errorf("外接矩形のパースに失敗: %w", err)
	}

	if r.GeoJSON == nil {
		return nil, fmt.Errorf("%s: 境界ポリゴンが含まれていません", name)
	}
	polygon, err := toMultiPolygon(r.GeoJSON.Geometry())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &model.Place{
		OsmID:       r.OsmID,
		Name:        name,
		DisplayName: r.DisplayName,
		BBox:        model.BoundingBox{West: west, South: south, East: east, North: north},
		Polygon:     polygon,
	}, nil
}

// toMultiPolygon ポリゴン系のジオメトリをMultiPolygonへ揃える
func toMultiPolygon(geometry orb.Geometry) (orb.MultiPolygon, error) {
	switch g := geometry.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{g}, nil
	case orb.MultiPolygon:
		return g, nil
	default:
		return nil, fmt.Errorf("ポリゴン以外のジオメトリが返されました: %s", geometry.GeoJSONType())
	}
}
