package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"TurnSeq-App/internal/domain/model"
)

const defaultRoadsBaseURL = "https://roads.googleapis.com/v1/snapToRoads"

// GoogleRoadsProvider はGoogle Maps Roads APIを使用した道路スナップの実装
type GoogleRoadsProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleRoadsProvider は新しいプロバイダを生成する
func NewGoogleRoadsProvider(apiKey string) *GoogleRoadsProvider {
	return &GoogleRoadsProvider{
		apiKey:     apiKey,
		baseURL:    defaultRoadsBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewGoogleRoadsProviderWithBaseURL テスト用にエンドポイントを差し替えたプロバイダを生成する
func NewGoogleRoadsProviderWithBaseURL(apiKey, baseURL string) *GoogleRoadsProvider {
	p := NewGoogleRoadsProvider(apiKey)
	p.baseURL = baseURL
	return p
}

// SnapToRoad は座標を最寄りの道路上の座標にスナップする
// 約50m以内に道路がない場合snappedPointsは空で返ってくるため、
// その場合は(nil, nil)を返す（「道路なし」はエラーではなくデータ）
func (g *GoogleRoadsProvider) SnapToRoad(ctx context.Context, point model.LatLng) (*model.LatLng, error) {
	// 1. APIリクエストURLを構築（pathは「緯度,経度」の順）
	params := url.Values{}
	params.Set("path", fmt.Sprintf("%f,%f", point.Lat, point.Lng))
	params.Set("interpolate", "false")
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ステータス %s", model.ErrRemoteService, resp.Status)
	}

	// 3. JSONレスポンスをパース
	var apiResp snapToRoadsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	if apiResp.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: %s", model.ErrRemoteService, apiResp.ErrorMessage)
	}

	// 4. 最寄りの道路座標に変換して返す
	if len(apiResp.SnappedPoints) == 0 {
		return nil, nil
	}
	location := apiResp.SnappedPoints[0].Location
	return &model.LatLng{Lat: location.Latitude, Lng: location.Longitude}, nil
}

// --- Roads APIのレスポンスをパースするための構造体 ---

type snapToRoadsResponse struct {
	SnappedPoints []snappedPoint `json:"snappedPoints"`
	ErrorMessage  string         `json:"error_message,omitempty"`
}

type snappedPoint struct {
	Location      latLngBody `json:"location"`
	PlaceID       string     `json:"placeId"`
	OriginalIndex *int       `json:"originalIndex,omitempty"`
}
