package main

import (
	"context"
	"log"
	"os"

	"soulfood/config"
	httpapi "soulfood/internal/api/http"
	"soulfood/internal/service"
	"soulfood/internal/storage"
)

const orderEventsTopic = "order-events"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := config.RunMigrations(db, getenv("MIGRATIONS_DIR", "migrations")); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(orderEventsTopic)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	orderRepo := storage.NewOrderRepository(db)
	redisStore := storage.NewRedisStore(rdb)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	catalogSvc := service.NewCatalogService(repo)
	cartSvc := service.NewCartService(redisStore, repo)
	orderSvc := service.NewOrderService(orderRepo, repo, publisher)
	statsSvc := service.NewStatsService(redisStore)

	reader := config.NewKafkaReader(orderEventsTopic, "order-stats")
	defer reader.Close()
	consumer := service.NewStatsConsumer(reader, redisStore)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(catalogSvc, cartSvc, orderSvc, statsSvc)
	httpapi.StartServer(":"+getenv("PORT", "8080"), httpapi.NewRouter(handler))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
