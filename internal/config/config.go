package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"TurnSeq-App/internal/domain/model"
)

// Config パイプラインの設定レコード
// 環境変数から一度だけ読み込み、値渡しで各コンポーネントに配る
// （プロセス全体で共有する可変グローバルは持たない）
type Config struct {
	// GoogleMapsAPIKey Roads・Routes APIのキー（空なら点の生成のみの構成）
	GoogleMapsAPIKey string

	// PlaceNames 解析対象の場所名リスト
	PlaceNames []string

	// Granularity 外接矩形の分割数（1以上）
	Granularity int

	// MaxRoutePoints 経路行列に渡す有効点数の上限（0で無制限）
	MaxRoutePoints int

	// SummaryTTLHours Firestoreに保存する要約統計の有効期限
	SummaryTTLHours int

	// FirestoreProjectID 要約キャッシュ用のGCPプロジェクトID（空ならキャッシュ無効）
	FirestoreProjectID string
}

const (
	defaultGranularity     = 10
	defaultMaxRoutePoints  = 10
	defaultSummaryTTLHours = 24
)

// Load 環境変数からConfigを構築して検証する
// 呼び出し側が事前にgodotenv.Load()で.envを読み込んでおく想定
func Load() (*Config, error) {
	cfg := &Config{
		GoogleMapsAPIKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
		Granularity:        defaultGranularity,
		MaxRoutePoints:     defaultMaxRoutePoints,
		SummaryTTLHours:    defaultSummaryTTLHours,
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
	}

	if names := os.Getenv("PLACE_NAMES"); names != "" {
		for _, name := range strings.Split(names, ";") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				cfg.PlaceNames = append(cfg.PlaceNames, trimmed)
			}
		}
	}

	if v := os.Getenv("MAP_GRANULARITY"); v != "" {
		granularity, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MAP_GRANULARITYが整数ではありません (%q): %w", v, err)
		}
		cfg.Granularity = granularity
	}

	if v := os.Getenv("MAX_ROUTE_POINTS"); v != "" {
		maxPoints, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MAX_ROUTE_POINTSが整数ではありません (%q): %w", v, err)
		}
		cfg.MaxRoutePoints = maxPoints
	}

	if v := os.Getenv("SUMMARY_TTL_HOURS"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SUMMARY_TTL_HOURSが整数ではありません (%q): %w", v, err)
		}
		cfg.SummaryTTLHours = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 設定値の妥当性を検証する
func (c *Config) Validate() error {
	if c.Granularity < 1 {
		return fmt.Errorf("MAP_GRANULARITY=%d: %w", c.Granularity, model.ErrInvalidGranularity)
	}
	if c.MaxRoutePoints < 0 {
		return fmt.Errorf("MAX_ROUTE_POINTSは0以上である必要があります (%d)", c.MaxRoutePoints)
	}
	if c.SummaryTTLHours < 1 {
		return fmt.Errorf("SUMMARY_TTL_HOURSは1以上である必要があります (%d)", c.SummaryTTLHours)
	}
	return nil
}

// HasRoutingCapability Roads/Routes APIを呼べる構成かどうか
func (c *Config) HasRoutingCapability() bool {
	return c.GoogleMapsAPIKey != ""
}
