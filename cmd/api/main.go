package main

import (
	"log"

	"cognicart/internal/config"
	"cognicart/internal/domain/model"
	"cognicart/internal/handler"
	"cognicart/internal/infra/db"
	infraRepo "cognicart/internal/infra/repository"
	"cognicart/internal/server"
	"cognicart/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Wishlist{},
		&model.Rating{},
		&model.Review{},
		&model.CatalogEntry{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	ratingRepo := infraRepo.NewRatingGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	catalogRepo := infraRepo.NewCatalogEntryGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, cfg)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo, txManager)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderItemRepo, txManager)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	ratingUC := usecase.NewRatingUsecase(ratingRepo, productRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, productRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Product:       handler.NewProductHandler(productUC),
		SellerProduct: handler.NewSellerProductHandler(productUC),
		Cart:          handler.NewCartHandler(cartUC),
		Order:         handler.NewOrderHandler(orderUC),
		AdminOrder:    handler.NewAdminOrderHandler(adminOrderUC),
		Wishlist:      handler.NewWishlistHandler(wishlistUC),
		Rating:        handler.NewRatingHandler(ratingUC),
		Review:        handler.NewReviewHandler(reviewUC),
		Catalog:       handler.NewCatalogHandler(catalogUC),
	}

	//Server起動
	e := server.New(cfg, handlers)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
