package httpclient

import (
	"time"

	"resort-booking-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.FailureThreshold)
	case "consecutive":
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailure)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailure)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	return circuit.NewHTTPClientWithBreaker(cb, time.Duration(cfg.Timeout)*time.Second, nil)
}
