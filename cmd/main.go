package main

import (
	"context"
	"log"
	"time"

	"resort-booking-service/config"
	"resort-booking-service/internal/module/booking/handler"
	"resort-booking-service/internal/module/booking/repositories"
	"resort-booking-service/internal/module/booking/usecases"
	"resort-booking-service/internal/pkg/database"
	"resort-booking-service/internal/pkg/http"
	"resort-booking-service/internal/pkg/httpclient"
	"resort-booking-service/internal/pkg/lock"
	log_internal "resort-booking-service/internal/pkg/log"
	"resort-booking-service/internal/pkg/messagestream"
	"resort-booking-service/internal/pkg/middleware"
	"resort-booking-service/internal/pkg/redis"
	"resort-booking-service/internal/pkg/scheduler"
	router "resort-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched, bookingHandler := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// periodic enqueue of the expiry sweep
	go sched.StartPeriodic(&cfg.Redis, cfg.Booking.SweepIntervalMinutes)

	// task handlers (the sweep itself)
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeReleaseExpiredBookings},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.ReleaseExpiredBookings},
	)

	// scheduler monitoring
	go sched.StartMonitoring(&cfg.Redis)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *scheduler.Scheduler, *handler.BookingHandler) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init lock service; the TTL is a crash backstop sized past the hold
	lockExpiry := time.Duration(cfg.Booking.HoldDurationHours)*time.Hour +
		time.Duration(cfg.Booking.LockExpirySlackMinutes)*time.Minute
	locker := lock.New(redisClient, logger, lockExpiry)

	bookingRepo := repositories.New(db, logger, httpClient, redisClient, &cfg.IdentityService, &cfg.PaymentGateway)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher, locker, &cfg.Booking)
	middleware := middleware.Middleware{
		Log:  logger,
		Repo: bookingRepo,
	}

	validator := validator.New()
	bookingHandler := handler.BookingHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	consumeCreateBookingRouter, err := messagestream.NewRouter(publisher, "create_booking_poisoned", "create_booking_handler", usecases.TopicCreateBooking, subscriber, bookingHandler.ConsumeCreateBookingQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_create_booking router", err)
	}

	messageRouters = append(messageRouters, consumeCreateBookingRouter)

	sched := &scheduler.Scheduler{Log: logger}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &middleware)

	return r, messageRouters, sched, &bookingHandler
}
