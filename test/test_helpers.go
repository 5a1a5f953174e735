package test

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"TurnSeq-App/internal/domain/repository"
	"TurnSeq-App/internal/infrastructure/database"
	repoimpl "TurnSeq-App/internal/repository"
)

// setupTestEnvironment .envを読み込む（無ければシステム環境変数のみ使用）
func setupTestEnvironment() error {
	_ = godotenv.Load("../.env")
	return nil
}

// hasRoutingEnv Roads/Routes APIを呼べる環境かどうか
func hasRoutingEnv() bool {
	return os.Getenv("GOOGLE_MAPS_API_KEY") != ""
}

// setupTestPlacesStore 統合テスト用の解析結果ストアをセットアップする
// SupabaseのENVがあればSupabase実装、なければPostgreSQL実装（リトライ付き）を返す
func setupTestPlacesStore() (repository.PlacesStoreRepository, func(), error) {
	if err := setupTestEnvironment(); err != nil {
		return nil, nil, err
	}

	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, nil, err
		}
		return repoimpl.NewSupabasePlacesRepository(client), func() {}, nil
	}

	postgresClient, err := database.NewPostgreSQLClientWithRetry(5, 1*time.Second)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		postgresClient.Close()
	}
	return repoimpl.NewPostgresPlacesRepository(postgresClient), cleanup, nil
}
