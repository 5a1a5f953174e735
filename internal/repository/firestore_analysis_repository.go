package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"TurnSeq-App/internal/domain/model"
	"TurnSeq-App/internal/domain/repository"
)

// FirestoreAnalysisRepository Firestoreを使用した要約統計キャッシュリポジトリ
// ドキュメントIDは場所ID（osm_id）で、GETエンドポイントが再計算なしで参照する
type FirestoreAnalysisRepository struct {
	client *firestore.Client
}

// NewFirestoreAnalysisRepository 新しいFirestoreAnalysisRepositoryインスタンスを作成
func NewFirestoreAnalysisRepository(client *firestore.Client) repository.AnalysisCacheRepository {
	return &FirestoreAnalysisRepository{
		client: client,
	}
}

// SaveSummary は要約統計をFirestoreに保存し、run_idを払い出す
func (r *FirestoreAnalysisRepository) SaveSummary(ctx context.Context, summary *model.AnalysisSummary, ttlHours int) error {
	if summary.RunID == "" {
		summary.RunID = fmt.Sprintf("run_%s", uuid.New().String())
	}

	docID := strconv.FormatInt(summary.PlaceID, 10)
	firestoreData := summary.ToFirestoreAnalysisSummary(ttlHours)

	_, err := r.client.Collection("analysisSummaries").Doc(docID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save analysis summary %s: %v", docID, err)
		return fmt.Errorf("要約統計の保存に失敗しました: %w", err)
	}

	log.Printf("✅ Analysis summary saved: %s (expires in %d hours)", docID, ttlHours)
	return nil
}

// GetSummary は指定された場所IDの要約統計をFirestoreから取得する
func (r *FirestoreAnalysisRepository) GetSummary(ctx context.Context, placeID int64) (*model.AnalysisSummary, error) {
	docID := strconv.FormatInt(placeID, 10)
	doc, err := r.client.Collection("analysisSummaries").Doc(docID).Get(ctx)
	if err != nil {
		// Firestoreのエラータイプをチェック
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("要約統計が見つかりません（有効期限切れまたは未解析）: %s", docID)
		}
		return nil, fmt.Errorf("要約統計の取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreAnalysisSummary
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	return firestoreData.ToAnalysisSummary(), nil
}
