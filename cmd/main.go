package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"TurnSeq-App/internal/config"
	"TurnSeq-App/internal/domain/repository"
	"TurnSeq-App/internal/domain/service"
	"TurnSeq-App/internal/handler"
	"TurnSeq-App/internal/infrastructure/database"
	fsinfra "TurnSeq-App/internal/infrastructure/firestore"
	"TurnSeq-App/internal/infrastructure/maps"
	repoimpl "TurnSeq-App/internal/repository"
	"TurnSeq-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	ctx := context.Background()

	// 外部プロバイダの組み立て
	geocoder := maps.NewNominatimGeocodingProvider()
	var roads repository.RoadsProvider
	var directions repository.DirectionsProvider
	if cfg.HasRoutingCapability() {
		roads = maps.NewGoogleRoadsProvider(cfg.GoogleMapsAPIKey)
		directions = maps.NewGoogleRoutesProvider(cfg.GoogleMapsAPIKey)
	} else {
		fmt.Println("⚠️ GOOGLE_MAPS_API_KEYが未設定のため、点の生成のみの構成で起動します")
	}

	// ストアの組み立て（Supabase優先、なければPostgreSQL直接接続）
	var store repository.PlacesStoreRepository
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}
		store = repoimpl.NewSupabasePlacesRepository(supabaseClient)
		fmt.Println("✅ Supabaseストアを使用します")
	} else if os.Getenv("DATABASE_URL") != "" {
		postgresClient, err := database.NewPostgreSQLClient()
		if err != nil {
			log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
		}
		store = repoimpl.NewPostgresPlacesRepository(postgresClient)
		fmt.Println("✅ PostgreSQLストアを使用します")
	} else {
		fmt.Println("⚠️ ストアが未構成のため解析結果は保存されません")
	}

	// 要約キャッシュの組み立て
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
	analysisHandler := handler.NewAnalysisHandler(analysisUseCase)

	// ルーティングの設定
	r := gin.Default()
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "TurnSeq-App"})
	})
	r.POST("/api/analyses", analysisHandler.PostAnalysis)
	r.GET("/api/analyses/:place_id", analysisHandler.GetAnalysis)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("TurnSeq-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}
