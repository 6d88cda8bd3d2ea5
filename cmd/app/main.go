package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayvista/config"
	"stayvista/internal/auth"
	"stayvista/internal/bootstrap"
	"stayvista/internal/cache"
	"stayvista/internal/kafka"
	"stayvista/internal/payment"
	"stayvista/internal/repository"
	"stayvista/internal/service/bookings"
	"stayvista/internal/service/payments"
	"stayvista/internal/service/rooms"
	"stayvista/internal/service/users"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("connect mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("disconnect mongo: %v", err)
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("ping mongo: %v", err)
	}
	log.Println("connected to MongoDB")

	db := client.Database(cfg.Mongo.Database)

	var roomsCache rooms.Cache
	if cfg.App.RoomsCacheTTL > 0 {
		roomsCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.App.RoomsCacheTTL)*time.Second)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokens := auth.NewTokenService(cfg.Auth.TokenSecret, time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour)

	userService := users.NewUserService(repository.NewUserRepository(db))
	roomService := rooms.NewRoomService(repository.NewRoomRepository(db), roomsCache)
	bookingService := bookings.NewBookingService(
		repository.NewBookingRepository(db),
		producer,
		cfg.Kafka.BookingTopic,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	paymentService := payments.NewPaymentService(payment.NewStripeClient(cfg.Payment.SecretKey))

	svc := bootstrap.Services{
		Users:    userService,
		Rooms:    roomService,
		Bookings: bookingService,
		Payments: paymentService,
	}

	log.Printf("StayVista is running on %s", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, tokens, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
