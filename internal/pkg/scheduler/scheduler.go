package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"resort-booking-service/config"
	"resort-booking-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeReleaseExpiredBookings = "bookings:release_expired"
)

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// StartPeriodic registers the recurring tasks and blocks running the
// enqueue loop. The expiry sweep fires on the configured interval
// (default every minute).
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, sweepIntervalMinutes int) {
	ctx := context.Background()
	scheduler := asynq.NewScheduler(redisOpt(cfg), nil)

	spec := fmt.Sprintf("@every %dm", sweepIntervalMinutes)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeReleaseExpiredBookings, nil)); err != nil {
		s.Log.Error(ctx, "error register periodic task", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		s.Log.Error(ctx, "error run periodic scheduler", err)
	}
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	http.Handle(h.RootPath()+"/", h)

	// Go to http://localhost:8080/monitoring for the asynqmon homepage.
	err := http.ListenAndServe(":8080", nil)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	// mux maps a type to a handler
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
