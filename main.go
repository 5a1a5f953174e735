package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"TurnSeq-App/internal/config"
	"TurnSeq-App/internal/domain/repository"
	"TurnSeq-App/internal/domain/service"
	"TurnSeq-App/internal/infrastructure/database"
	fsinfra "TurnSeq-App/internal/infrastructure/firestore"
	"TurnSeq-App/internal/infrastructure/maps"
	repoimpl "TurnSeq-App/internal/repository"
	"TurnSeq-App/internal/usecase"
)

// バッチ実行エントリポイント
// PLACE_NAMESに列挙された場所を順に解析し、失敗した場所はスキップして続行する
// （場所単位のスキップ判断はパイプライン本体ではなくこの層の方針）
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}
	if len(cfg.PlaceNames) == 0 {
		log.Fatal("PLACE_NAMESが設定されていません（例: PLACE_NAMES=\"Boston, Massachusetts, USA; Kyoto, Japan\"）")
	}

	ctx := context.Background()

	geocoder := maps.NewNominatimGeocodingProvider()
	var roads repository.RoadsProvider
	var directions repository.DirectionsProvider
	if cfg.HasRoutingCapability() {
		roads = maps.NewGoogleRoadsProvider(cfg.GoogleMapsAPIKey)
		directions = maps.NewGoogleRoutesProvider(cfg.GoogleMapsAPIKey)
	} else {
		fmt.Println("⚠️ GOOGLE_MAPS_API_KEYが未設定のため、点の生成のみを実行します")
	}

	var store repository.PlacesStoreRepository
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}
		store = repoimpl.NewSupabasePlacesRepository(supabaseClient)
	} else if os.Getenv("DATABASE_URL") != "" {
		postgresClient, err := database.NewPostgreSQLClient()
		if err != nil {
			log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
		}
		defer postgresClient.Close()
		store = repoimpl.NewPostgresPlacesRepository(postgresClient)
	} else {
		fmt.Println("⚠️ ストアが未構成のため解析結果は保存されません")
	}

	var cache repository.AnalysisCacheRepository
	if cfg.FirestoreProjectID != "" {
		firestoreClient, err := fsinfra.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer firestoreClient.Close()
		cache = repoimpl.NewFirestoreAnalysisRepository(firestoreClient.GetClient())
	}

	analysisService := service.NewPlaceAnalysisService(
		geocoder, roads, directions, cfg.Granularity, cfg.MaxRoutePoints)
	analysisUseCase := usecase.NewPlaceAnalysisUseCase(
		analysisService, store, cache, cfg.SummaryTTLHours)

	succeeded := 0
	for _, name := range cfg.PlaceNames {
		summary, err := analysisUseCase.RunAnalysis(ctx, name)
		if err != nil {
			log.Printf("❌ %s の解析に失敗したためスキップします: %v", name, err)
			continue
		}
		succeeded++
		if summary.UsableRoutes > 0 {
			fmt.Printf("%s: 平均交替率 %.1f%% (経路%d件, 95%%CI [%.1f%%, %.1f%%])\n",
				summary.DisplayName, summary.MeanFraction*100, summary.UsableRoutes,
				summary.CILower*100, summary.CIUpper*100)
		} else {
			fmt.Printf("%s: グリッド点%d件 (有効%d件, 経路なし)\n",
				summary.DisplayName, summary.GridPointCount, summary.ValidPointCount)
		}
	}

	log.Printf("🏁 バッチ完了: %d/%d件成功", succeeded, len(cfg.PlaceNames))
}
