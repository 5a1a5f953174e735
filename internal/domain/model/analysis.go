package model

import "time"

// PlaceAnalysis 1つの場所に対する解析結果の集約
// 構築後は読み取り専用として扱い、保存時は3種類の行集合（場所・点・経路）に射影される
// SnapResultsはGridPointsと同じ長さ・同じ並び順（経路なしモードでは空）
type PlaceAnalysis struct {
	Place       *Place
	GridPoints  []LatLng
	SnapResults []SnapResult
	Routes      []RouteEntry
}

// HasSnapResults 道路スナップを実施したかどうか（経路なしモードとの区別）
func (a *PlaceAnalysis) HasSnapResults() bool {
	return len(a.SnapResults) > 0
}

// ValidPoints スナップに成功した点だけを元のインデックス付きで取り出す
func (a *PlaceAnalysis) ValidPoints() []ValidPoint {
	valid := make([]ValidPoint, 0, len(a.SnapResults))
	for i, result := range a.SnapResults {
		if result.Found() {
			valid = append(valid, ValidPoint{GridIndex: i, Point: *result.Snapped})
		}
	}
	return valid
}

// AnalysisSummary 1つの場所の交替率の要約統計
// 経路ごとの交替率の平均・標準偏差・95%信頼区間を持つ
type AnalysisSummary struct {
	RunID           string    `json:"run_id"`
	PlaceID         int64     `json:"place_id"`
	PlaceName       string    `json:"place_name"`
	DisplayName     string    `json:"display_name"`
	GridPointCount  int       `json:"grid_point_count"`
	ValidPointCount int       `json:"valid_point_count"`
	RouteCount      int       `json:"route_count"`
	UsableRoutes    int       `json:"usable_routes"`
	MeanFraction    float64   `json:"mean_fraction"`
	StdDev          float64   `json:"std_dev"`
	CILower         float64   `json:"ci_lower"`
	CIUpper         float64   `json:"ci_upper"`
	Confidence      float64   `json:"confidence"`
	CreatedAt       time.Time `json:"created_at"`
}

// FirestoreAnalysisSummary Firestoreの要約ドキュメント
type FirestoreAnalysisSummary struct {
	RunID           string    `firestore:"run_id"`
	PlaceID         int64     `firestore:"place_id"`
	PlaceName       string    `firestore:"place_name"`
	DisplayName     string    `firestore:"display_name"`
	GridPointCount  int       `firestore:"grid_point_count"`
	ValidPointCount int       `firestore:"valid_point_count"`
	RouteCount      int       `firestore:"route_count"`
	UsableRoutes    int       `firestore:"usable_routes"`
	MeanFraction    float64   `firestore:"mean_fraction"`
	StdDev          float64   `firestore:"std_dev"`
	CILower         float64   `firestore:"ci_lower"`
	CIUpper         float64   `firestore:"ci_upper"`
	Confidence      float64   `firestore:"confidence"`
	CreatedAt       time.Time `firestore:"created_at"`
	ExpireAt        time.Time `firestore:"expireAt"`
}

// ToFirestoreAnalysisSummary Firestore保存用の構造体に変換
func (s *AnalysisSummary) ToFirestoreAnalysisSummary(ttlHours int) *FirestoreAnalysisSummary {
	return &FirestoreAnalysisSummary{
		RunID:           s.RunID,
		PlaceID:         s.PlaceID,
		PlaceName:       s.PlaceName,
		DisplayName:     s.DisplayName,
		GridPointCount:  s.GridPointCount,
		ValidPointCount: s.ValidPointCount,
		RouteCount:      s.RouteCount,
		UsableRoutes:    s.UsableRoutes,
		MeanFraction:    s.MeanFraction,
		StdDev:          s.StdDev,
		CILower:         s.CILower,
		CIUpper:         s.CIUpper,
		Confidence:      s.Confidence,
		CreatedAt:       s.CreatedAt,
		ExpireAt:        time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToAnalysisSummary FirestoreドキュメントからAPIレスポンス用のモデルに戻す
func (f *FirestoreAnalysisSummary) ToAnalysisSummary() *AnalysisSummary {
	return &AnalysisSummary{
		RunID:           f.RunID,
		PlaceID:         f.PlaceID,
		PlaceName:       f.PlaceName,
		DisplayName:     f.DisplayName,
		GridPointCount:  f.GridPointCount,
		ValidPointCount: f.ValidPointCount,
		RouteCount:      f.RouteCount,
		UsableRoutes:    f.UsableRoutes,
		MeanFraction:    f.MeanFraction,
		StdDev:          f.StdDev,
		CILower:         f.CILower,
		CIUpper:         f.CIUpper,
		Confidence:      f.Confidence,
		CreatedAt:       f.CreatedAt,
	}
}
