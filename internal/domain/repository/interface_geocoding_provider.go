package repository

import (
	"context"

	"TurnSeq-App/internal/domain/model"
)

// GeocodingProvider 場所名からPlace（ID・表示名・外接矩形・ポリゴン）を解決する
// 解決できない場合はmodel.ErrPlaceNotFoundをラップしたエラーを返す
type GeocodingProvider interface {
	Geocode(ctx context.Context, name string) (*model.Place, error)
}
