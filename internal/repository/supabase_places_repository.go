package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/repository"
	"TurnSeq-App/internal/infrastructure/database"
)

// SupabasePlacesRepository Supabaseを使用した解析結果ストア
// places・place_points・place_routesの3テーブルに追記する
type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesStoreRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

// HasPlace 同じ場所IDの行が既に存在するか確認する
func (r *SupabasePlacesRepository) HasPlace(ctx context.Context, placeID int64) (bool, error) {
	data, _, err := r.client.GetClient().From("places").
		Select("place_id", "exact", false).
		Eq("place_id", strconv.FormatInt(placeID, 10)).
		Execute()
	if err != nil {
		return false, fmt.Errorf("場所データの確認失敗: %w", err)
	}

	var rows []PlaceRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return false, fmt.Errorf("場所データのJSONアンマーシャル失敗: %w", err)
	}
	return len(rows) > 0, nil
}

// SaveAnalysis 集約を3つの行集合に射影して順に保存する
func (r *SupabasePlacesRepository) SaveAnalysis(ctx context.Context, analysis *model.PlaceAnalysis) error {
	placeRow := ProjectPlaceRow(analysis)
	if err := r.insert("places", placeRow); err != nil {
		return err
	}

	pointRows := ProjectPointRows(analysis)
	if len(pointRows) > 0 {
		if err := r.insert("place_points", pointRows); err != nil {
			return err
		}
	}

	routeRows := ProjectRouteRows(analysis)
	if len(routeRows) > 0 {
		if err := r.insert("place_routes", routeRows); err != nil {
			return err
		}
	}

	return nil
}

func (r *SupabasePlacesRepository) insert(table string, rows any) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("%sのJSONマーシャル失敗: %w", table, err)
	}

	_, _, err = r.client.GetClient().From(table).Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("%sへの保存失敗: %w", table, err)
	}

	return nil
}
