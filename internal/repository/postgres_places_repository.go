package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/repository"
	"TurnSeq-App/internal/infrastructure/database"
)

// PostgresPlacesRepository PostgreSQL直接接続を使用した解析結果ストア
// Supabase実装とスキーマを共有し、3テーブルへの挿入を1トランザクションにまとめる
type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlacesStoreRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

// HasPlace 同じ場所IDの行が既に存在するか確認する
func (r *PostgresPlacesRepository) HasPlace(ctx context.Context, placeID int64) (bool, error) {
	var count int
	err := r.client.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM places WHERE place_id = $1`, placeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("場所データの確認失敗: %w", err)
	}
	return count > 0, nil
}

// SaveAnalysis 集約を3つの行集合に射影して1トランザクションで保存する
func (r *PostgresPlacesRepository) SaveAnalysis(ctx context.Context, analysis *model.PlaceAnalysis) error {
	tx, err := r.client.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始失敗: %w", err)
	}
	defer tx.Rollback()

	placeRow := ProjectPlaceRow(analysis)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO places (place_id, name, display_name, bbox_west, bbox_south, bbox_east, bbox_north, boundary_wkt)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		placeRow.PlaceID, placeRow.Name, placeRow.DisplayName,
		placeRow.West, placeRow.South, placeRow.East, placeRow.North, placeRow.Boundary)
	if err != nil {
		return fmt.Errorf("placesへの保存失敗: %w", err)
	}

	for _, row := range ProjectPointRows(analysis) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO place_points (place_id, grid_index, grid_lat, grid_lng, snapped_lat, snapped_lng)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			row.PlaceID, row.GridIndex, row.GridLat, row.GridLng, row.SnappedLat, row.SnappedLng)
		if err != nil {
			return fmt.Errorf("place_pointsへの保存失敗 (grid_index=%d): %w", row.GridIndex, err)
		}
	}

	for _, row := range ProjectRouteRows(analysis) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO place_routes (place_id, origin_index, destination_index, maneuvers, turns, double_turns)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			row.PlaceID, row.OriginIndex, row.DestinationIndex,
			pq.Array(row.Maneuvers), pq.Array(row.Turns), pq.Array(row.DoubleTurns))
		if err != nil {
			return fmt.Errorf("place_routesへの保存失敗 (%d→%d): %w",
				row.OriginIndex, row.DestinationIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミット失敗: %w", err)
	}
	return nil
}
