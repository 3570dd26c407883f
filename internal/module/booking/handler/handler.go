package handler

import (
	"context"
	"fmt"
	"strconv"

	"resort-booking-service/internal/module/booking/models/request"
	"resort-booking-service/internal/module/booking/usecases"
	"resort-booking-service/internal/pkg/errors"
	"resort-booking-service/internal/pkg/helpers"
	"resort-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.elastic.co/apm"
)

type BookingHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)
	emailUser := ctx.Locals("email_user").(string)

	// call usecase to queue the reservation hold
	err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "booking queued, please check your email for the payment invoice")
}

func (h *BookingHandler) ConsumeCreateBookingQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.CreateBooking
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()

	// call usecase to create the reservation hold
	if err := h.Usecase.ConsumeCreateBookingQueue(ctx, &req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error consume create booking queue: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicCreateBooking,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func (h *BookingHandler) Payment(ctx *fiber.Ctx) error {
	var req request.Payment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	emailUser := ctx.Locals("email_user").(string)

	// call usecase to settle the booking
	err := h.Usecase.Payment(ctx.UserContext(), &req, emailUser)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success payment")
}

func (h *BookingHandler) PaymentCancel(ctx *fiber.Ctx) error {
	var req request.PaymentCancellation
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	emailUser := ctx.Locals("email_user").(string)

	// call usecase to cancel the booking
	err := h.Usecase.PaymentCancel(ctx.UserContext(), &req, emailUser)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error payment cancel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success payment cancel")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	// call usecase to show bookings
	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) CheckAvailability(ctx *fiber.Ctx) error {
	req := request.CheckAvailability{
		CheckInDate:  ctx.Query("check_in_date"),
		CheckOutDate: ctx.Query("check_out_date"),
	}

	roomTypeID, err := strconv.ParseInt(ctx.Query("room_type_id"), 10, 64)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse room type id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse room type id"))
	}
	req.RoomTypeID = roomTypeID

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CheckAvailability(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error check availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success check availability")
}

func (h *BookingHandler) CountPendingPayment(ctx *fiber.Ctx) error {
	roomTypeID, err := strconv.ParseInt(ctx.Query("room_type_id"), 10, 64)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse room type id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse room type id"))
	}

	// call usecase to count pending payment
	resp, err := h.Usecase.CountPendingPayment(ctx.UserContext(), roomTypeID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error count pending payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success count pending payment")
}

// ReleaseExpiredBookings is the scheduled sweep entry point. A failing
// row inside the sweep never fails the task; only being unable to run
// the sweep at all does.
func (h *BookingHandler) ReleaseExpiredBookings(ctx context.Context, _ *asynq.Task) error {
	tx := apm.DefaultTracer.StartTransaction("bookings:release_expired", "scheduled")
	defer tx.End()
	ctx = apm.ContextWithTransaction(ctx, tx)

	result, err := h.Usecase.ReleaseExpiredBookings(ctx)
	if err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error release expired bookings: %v", err))
		apm.CaptureError(ctx, err).Send()
		return err
	}

	h.Log.Info(ctx, "release expired bookings done",
		"released", result.Released,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	return nil
}
