package helpers

import (
	"time"

	"resort-booking-service/internal/pkg/errors"
	"resort-booking-service/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, _ log.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, _ log.Logger, err error) error {
	code := errors.GetCode(err)
	return ctx.Status(code).JSON(Response{
		Success: false,
		Message: err.Error(),
	})
}

// NightsBetween counts the stay nights between check-in and check-out dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// StayDates lists every night of the stay, check-out day excluded.
func StayDates(checkIn, checkOut time.Time) []time.Time {
	var dates []time.Time
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
