package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"TurnSeq-App/internal/domain/model"
)

const defaultRoutesBaseURL = "https://routes.googleapis.com/directions/v2:computeRoutes"

// GoogleRoutesProvider はGoogle Maps Routes APIを使用した経路計算の実装
// フィールドマスクでマニューバのみを要求し、レスポンスはこの境界で型付きに変換する
type GoogleRoutesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleRoutesProvider は新しいプロバイダを生成する
func NewGoogleRoutesProvider(apiKey string) *GoogleRoutesProvider {
	return &GoogleRoutesProvider{
		apiKey:     apiKey,
		baseURL:    defaultRoutesBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewGoogleRoutesProviderWithBaseURL テスト用にエンドポイントを差し替えたプロバイダを生成する
func NewGoogleRoutesProviderWithBaseURL(apiKey, baseURL string) *GoogleRoutesProvider {
	p := NewGoogleRoutesProvider(apiKey)
	p.baseURL = baseURL
	return p
}

// ComputeRoute はRoutes APIを呼び出して運転経路のマニューバ列を取得する
// 出発地と目的地が同一座標の場合はリクエストせずに前提条件違反を返す
// 経路が1件も返らなかった場合は空のスライスを返す（エラーではない）
func (g *GoogleRoutesProvider) ComputeRoute(ctx context.Context, origin, destination model.LatLng) ([]string, error) {
	if origin.Equal(destination) {
		return nil, model.ErrSameLocation
	}

	// 1. リクエストボディを構築
	body := routesRequest{
		Origin:      newWaypoint(origin),
		Destination: newWaypoint(destination),
		TravelMode:  "DRIVE",
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("リクエストボディの構築に失敗: %w", err)
	}

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", "routes.legs.steps.navigationInstruction.maneuver")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ステータス %s", model.ErrRemoteService, resp.Status)
	}

	// 3. JSONレスポンスをパース
	var apiResp routesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	if apiResp.Error != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrRemoteService, apiResp.Error.Message)
	}

	// 4. マニューバ列に変換して返す
	if len(apiResp.Routes) == 0 {
		return []string{}, nil
	}

	var maneuvers []string
	for _, leg := range apiResp.Routes[0].Legs {
		for _, step := range leg.Steps {
			if step.NavigationInstruction.Maneuver != "" {
				maneuvers = append(maneuvers, step.NavigationInstruction.Maneuver)
			}
		}
	}
	return maneuvers, nil
}

// --- Routes APIのリクエスト・レスポンスをパースするための構造体 ---

type routesRequest struct {
	Origin      waypoint `json:"origin"`
	Destination waypoint `json:"destination"`
	TravelMode  string   `json:"travelMode"`
}

type waypoint struct {
	Location struct {
		LatLng latLngBody `json:"latLng"`
	} `json:"location"`
}

type latLngBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func newWaypoint(p model.LatLng) waypoint {
	var w waypoint
	w.Location.LatLng = latLngBody{Latitude: p.Lat, Longitude: p.Lng}
	return w
}

type routesResponse struct {
	Routes []routeBody `json:"routes"`
	Error  *apiError   `json:"error,omitempty"`
}

type routeBody struct {
	Legs []legBody `json:"legs"`
}

type legBody struct {
	Steps []stepBody `json:"steps"`
}

type stepBody struct {
	NavigationInstruction navigationInstruction `json:"navigationInstruction"`
}

type navigationInstruction struct {
	Maneuver string `json:"maneuver"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
