package main

import (
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

// セッションの寿命。切れたらカートも消える。
const sessionTTL = 24 * time.Hour

func main() {
	//.envは無くてもよい（環境変数があれば十分）
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg.DatabasePath, cfg.Debug)
	if err != nil {
		panic(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		panic(err)
	}
	if err := db.Seed(gormDB); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	feedbackRepo := infraRepo.NewFeedbackGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, reviewRepo)
	cartUC := usecase.NewCartUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo)

	authUC, err := usecase.NewAdminAuthUsecase(cfg.AdminPassword)
	if err != nil {
		panic(err)
	}

	//セッション（カート・管理者フラグ）
	sessions := session.NewManager(cfg.SecretKey, sessionTTL)

	//Handler生成
	handlers := []server.RouteRegistrar{
		handler.NewShopHandler(productUC),
		handler.NewCartHandler(cartUC, orderUC),
		handler.NewFeedbackHandler(feedbackUC),
		handler.NewAdminHandler(authUC, productUC, orderUC, feedbackUC),
		handler.NewAPIProductHandler(productUC),
		handler.NewAPIOrderHandler(orderUC),
		handler.NewAPIFeedbackHandler(feedbackUC),
	}

	//Server起動
	e, err := server.New(cfg, sessions, handlers...)
	if err != nil {
		panic(err)
	}
	e.Logger.Fatal(e.Start(cfg.Addr()))
}
