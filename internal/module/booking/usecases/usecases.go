package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"resort-booking-service/config"
	"resort-booking-service/internal/module/booking/models/entity"
	"resort-booking-service/internal/module/booking/models/request"
	"resort-booking-service/internal/module/booking/models/response"
	"resort-booking-service/internal/module/booking/repositories"
	"resort-booking-service/internal/pkg/errors"
	"resort-booking-service/internal/pkg/helpers"
	"resort-booking-service/internal/pkg/lock"
	"resort-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	TopicCreateBooking = "create_booking"
	TopicNotification  = "notification"

	dateLayout = "2006-01-02"

	cancelReasonExpired = "reservation hold expired"
	cancelActorSystem   = "system"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	locker  lock.Locker
	cfg     *config.BookingConfig
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, payload *request.CreateBooking, userID int64, emailUser string) error
	Payment(ctx context.Context, payload *request.Payment, emailUser string) error
	PaymentCancel(ctx context.Context, payload *request.PaymentCancellation, emailUser string) error
	ShowBookings(ctx context.Context, userID int64) ([]response.BookedRoom, error)
	CheckAvailability(ctx context.Context, payload *request.CheckAvailability) (response.Availability, error)
	CountPendingPayment(ctx context.Context, roomTypeID int64) (response.PendingPayment, error)
	// queue
	ConsumeCreateBookingQueue(ctx context.Context, payload *request.CreateBooking) error
	// scheduler
	ReleaseExpiredBookings(ctx context.Context) (response.SweepResult, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, locker lock.Locker, cfg *config.BookingConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		locker:  locker,
		cfg:     cfg,
	}
}

func inventoryLockKey(roomTypeID int64, checkIn, checkOut time.Time) string {
	return fmt.Sprintf("inventory:%d:%s:%s", roomTypeID, checkIn.Format(dateLayout), checkOut.Format(dateLayout))
}

func bookingLockKey(reference string) string {
	return fmt.Sprintf("booking:%s", reference)
}

func referenceNumber(id uuid.UUID) string {
	return "RB-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:10])
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("error parse check in date")
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("error parse check out date")
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, errors.BadRequest("check out date must be after check in date")
	}
	return in, out, nil
}

// CreateBooking is the request-path half of checkout: validate, precheck
// the stock counters, then hand the heavy work to the queue consumer.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, userID int64, emailUser string) error {
	checkIn, checkOut, err := parseStayDates(payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		return err
	}

	if _, err := u.repo.FindRoomTypeByID(ctx, payload.RoomTypeID); err != nil {
		return err
	}

	stock, err := u.repo.CheckRoomStock(ctx, payload.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return err
	}
	if stock >= 0 && stock < int64(payload.TotalRooms) {
		return errors.ErrCapacityExceeded
	}

	payload.UserID = userID
	if payload.GuestEmail == "" {
		payload.GuestEmail = emailUser
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal booking payload")
	}

	if err := u.publish.Publish(TopicCreateBooking, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish create booking", err)
		return errors.InternalServerError("error queue booking")
	}

	return nil
}

// ConsumeCreateBookingQueue creates the reservation hold. The inventory
// lock serializes the capacity check and insert; it is released on every
// exit path so a failed attempt never strands the room type.
func (u *usecase) ConsumeCreateBookingQueue(ctx context.Context, payload *request.CreateBooking) error {
	checkIn, checkOut, err := parseStayDates(payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		return err
	}

	roomType, err := u.repo.FindRoomTypeByID(ctx, payload.RoomTypeID)
	if err != nil {
		return err
	}

	lockKey := inventoryLockKey(payload.RoomTypeID, checkIn, checkOut)
	if err := u.locker.Acquire(ctx, lockKey); err != nil {
		return err
	}
	defer u.locker.Release(ctx, lockKey)

	if err := u.repo.SeedRoomStock(ctx, payload.RoomTypeID, checkIn, checkOut, roomType.TotalUnits); err != nil {
		return err
	}

	now := time.Now()
	booking := u.priceBooking(ctx, payload, roomType, checkIn, checkOut, now)
	booking.ReservedUntil = sql.NullTime{
		Time:  now.Add(time.Duration(u.cfg.HoldDurationHours) * time.Hour),
		Valid: true,
	}

	if err := u.repo.CreateBookingHold(ctx, booking, roomType.TotalUnits); err != nil {
		return err
	}

	if err := u.repo.DecrementRoomStock(ctx, payload.RoomTypeID, checkIn, checkOut, payload.TotalRooms); err != nil {
		// the hold exists; the counter drift self-heals on the DB check
		u.log.Error(ctx, "error decrement room stock", err)
	}

	u.notify(ctx, request.NotificationInvoice{
		ReferenceNumber: booking.ReferenceNumber,
		FinalPrice:      booking.FinalPrice,
		ReservedUntil:   booking.ReservedUntil.Time.Format("2006-01-02 15:04:05"),
		EmailRecipient:  payload.GuestEmail,
	})

	u.log.Info(ctx, "reservation hold created",
		"reference_number", booking.ReferenceNumber,
		"reserved_until", booking.ReservedUntil.Time,
	)

	return nil
}

func (u *usecase) priceBooking(ctx context.Context, payload *request.CreateBooking, roomType entity.RoomType, checkIn, checkOut time.Time, now time.Time) *entity.Booking {
	nights := helpers.NightsBetween(checkIn, checkOut)
	subtotal := roomType.BasePrice * float64(payload.TotalRooms) * float64(nights)
	mealCost := roomType.MealPrice * float64(payload.Adults+payload.Children) * float64(nights)

	var discount float64
	if payload.PromoCode != "" {
		promo, err := u.repo.FindActivePromoByCode(ctx, payload.PromoCode, now)
		if err != nil {
			u.log.Warn(ctx, "promo not applied", "code", payload.PromoCode, "error", err)
		} else {
			discount = subtotal * promo.DiscountPercent / 100
		}
	}

	id := uuid.New()
	return &entity.Booking{
		ID:              id,
		ReferenceNumber: referenceNumber(id),
		UserID:          payload.UserID,
		GuestName:       payload.GuestName,
		GuestEmail:      payload.GuestEmail,
		GuestPhone:      payload.GuestPhone,
		RoomTypeID:      payload.RoomTypeID,
		TotalRooms:      payload.TotalRooms,
		Adults:          payload.Adults,
		Children:        payload.Children,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Subtotal:        subtotal,
		Discount:        discount,
		MealCost:        mealCost,
		FinalPrice:      subtotal + mealCost - discount,
		Status:          entity.StatusPending,
		CreatedAt:       now,
	}
}

// Payment settles a hold. Status guards run before any lock operation;
// the booking lock is then held for the rest of the call and released in
// a defer so no path, gateway failure included, can leak it.
func (u *usecase) Payment(ctx context.Context, payload *request.Payment, emailUser string) error {
	booking, err := u.repo.FindBookingByReference(ctx, payload.ReferenceNumber)
	if err != nil {
		return err
	}

	if err := payableGuard(booking); err != nil {
		return err
	}

	lockKey := bookingLockKey(booking.ReferenceNumber)
	if err := u.locker.Acquire(ctx, lockKey); err != nil {
		return err
	}
	defer u.locker.Release(ctx, lockKey)

	// re-check under the lock: the sweeper may have cancelled the hold
	// between the guard and the acquire
	booking, err = u.repo.FindBookingByReference(ctx, payload.ReferenceNumber)
	if err != nil {
		return err
	}
	if err := payableGuard(booking); err != nil {
		return err
	}

	downpayment := booking.FinalPrice * u.cfg.DownpaymentPercentage
	if payload.Amount < downpayment {
		return errors.BadRequest("payment amount below the required downpayment")
	}

	result, err := u.repo.ChargePayment(ctx, request.GatewayCharge{
		ReferenceNumber: booking.ReferenceNumber,
		Amount:          payload.Amount,
		Currency:        "USD",
		Provider:        payload.Provider,
	})
	if err != nil {
		u.log.Error(ctx, "error charge payment gateway", err)
		return errors.InternalServerError("error charge payment gateway")
	}

	if !result.Success {
		return u.recordFailedPayment(ctx, booking, payload, result, emailUser)
	}

	status := entity.StatusPaid
	if payload.Amount < booking.FinalPrice {
		status = entity.StatusDownpayment
	}

	booking.Status = status
	booking.ReservedUntil = sql.NullTime{}

	payment := &entity.Payment{
		BookingID:         booking.ID,
		Provider:          payload.Provider,
		Status:            entity.PaymentStatusPaid,
		Amount:            payload.Amount,
		Currency:          "USD",
		ProofReviewStatus: entity.ProofReviewNone,
		CreatedAt:         time.Now(),
	}

	if err := u.repo.SettleBooking(ctx, &booking, payment); err != nil {
		return err
	}

	u.notify(ctx, request.NotificationPayment{
		ReferenceNumber: booking.ReferenceNumber,
		Message:         "payment received, see you at check-in",
		Provider:        payload.Provider,
		EmailRecipient:  emailUser,
	})

	return nil
}

func payableGuard(booking entity.Booking) error {
	switch booking.Status {
	case entity.StatusPaid, entity.StatusDownpayment:
		return errors.ErrAlreadyPaid
	case entity.StatusCancelled, entity.StatusFailed:
		return errors.ErrInvalidStatus
	}
	return nil
}

func (u *usecase) recordFailedPayment(ctx context.Context, booking entity.Booking, payload *request.Payment, result response.GatewayResult, emailUser string) error {
	booking.FailedPaymentAttempts++

	exhausted := booking.FailedPaymentAttempts >= u.cfg.MaxFailedPaymentAttempts
	if exhausted {
		booking.Status = entity.StatusFailed
		booking.ReservedUntil = sql.NullTime{}
	}

	payment := &entity.Payment{
		BookingID:         booking.ID,
		Provider:          payload.Provider,
		Status:            entity.PaymentStatusFailed,
		Amount:            payload.Amount,
		Currency:          "USD",
		ErrorCode:         sql.NullString{String: result.ErrorCode, Valid: result.ErrorCode != ""},
		ErrorMessage:      sql.NullString{String: result.ErrorMessage, Valid: result.ErrorMessage != ""},
		ProofReviewStatus: entity.ProofReviewNone,
		CreatedAt:         time.Now(),
	}

	if err := u.repo.SettleBooking(ctx, &booking, payment); err != nil {
		return err
	}

	if exhausted {
		if err := u.repo.IncrementRoomStock(ctx, booking.RoomTypeID, booking.CheckInDate, booking.CheckOutDate, booking.TotalRooms); err != nil {
			u.log.Error(ctx, "error restore room stock", err)
		}
	}

	u.notify(ctx, request.NotificationPayment{
		ReferenceNumber: booking.ReferenceNumber,
		Message:         fmt.Sprintf("payment failed: %s", result.ErrorMessage),
		Provider:        payload.Provider,
		EmailRecipient:  emailUser,
	})

	return errors.UnprocessableEntity(fmt.Sprintf("payment failed: %s", result.ErrorMessage))
}

// PaymentCancel is the explicit guest/admin cancellation path.
func (u *usecase) PaymentCancel(ctx context.Context, payload *request.PaymentCancellation, emailUser string) error {
	booking, err := u.repo.FindBookingByReference(ctx, payload.ReferenceNumber)
	if err != nil {
		return err
	}

	if booking.Status != entity.StatusPending && booking.Status != entity.StatusDownpayment {
		return errors.ErrInvalidStatus
	}

	lockKey := bookingLockKey(booking.ReferenceNumber)
	if err := u.locker.Acquire(ctx, lockKey); err != nil {
		return err
	}
	defer u.locker.Release(ctx, lockKey)

	booking, err = u.repo.FindBookingByReference(ctx, payload.ReferenceNumber)
	if err != nil {
		return err
	}
	if booking.Status != entity.StatusPending && booking.Status != entity.StatusDownpayment {
		return errors.ErrInvalidStatus
	}

	now := time.Now()
	booking.Status = entity.StatusCancelled
	booking.ReservedUntil = sql.NullTime{}
	booking.CancellationReason = sql.NullString{String: payload.Reason, Valid: true}
	booking.CancelledBy = sql.NullString{String: emailUser, Valid: true}
	booking.CancelledAt = sql.NullTime{Time: now, Valid: true}

	if err := u.repo.CancelBooking(ctx, &booking); err != nil {
		return err
	}

	if err := u.repo.IncrementRoomStock(ctx, booking.RoomTypeID, booking.CheckInDate, booking.CheckOutDate, booking.TotalRooms); err != nil {
		u.log.Error(ctx, "error restore room stock", err)
	}

	u.notify(ctx, request.NotificationPayment{
		ReferenceNumber: booking.ReferenceNumber,
		Message:         "your booking has been cancelled",
		EmailRecipient:  emailUser,
	})

	return nil
}

// ReleaseExpiredBookings is one sweep pass. Bookings are handled
// independently: a failure on one row is logged and the sweep moves on,
// and rows whose lock is held (settlement in flight) are skipped until
// the next pass.
func (u *usecase) ReleaseExpiredBookings(ctx context.Context) (response.SweepResult, error) {
	var result response.SweepResult

	now := time.Now()
	expired, err := u.repo.FindExpiredPendingBookings(ctx, now, u.cfg.ExpiredSweepBatchSize)
	if err != nil {
		return result, err
	}

	for _, booking := range expired {
		lockKey := bookingLockKey(booking.ReferenceNumber)
		if err := u.locker.Acquire(ctx, lockKey); err != nil {
			result.Skipped++
			continue
		}

		released, err := u.releaseExpiredBooking(ctx, booking.ReferenceNumber, now, lockKey)
		if err != nil {
			result.Failed++
			u.log.Error(ctx, "error release expired booking",
				"reference_number", booking.ReferenceNumber,
				"error", err,
			)
			continue
		}
		if !released {
			result.Skipped++
			continue
		}
		result.Released++
	}

	u.log.Info(ctx, "expiry sweep finished",
		"released", result.Released,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	return result, nil
}

func (u *usecase) releaseExpiredBooking(ctx context.Context, reference string, now time.Time, lockKey string) (bool, error) {
	defer u.locker.Release(ctx, lockKey)

	// the listed snapshot is stale: settlement may have held the lock and
	// settled the booking between the list query and our acquire
	booking, err := u.repo.FindBookingByReference(ctx, reference)
	if err != nil {
		return false, err
	}
	if booking.Status != entity.StatusPending || !booking.ReservedUntil.Valid || booking.ReservedUntil.Time.After(now) {
		return false, nil
	}

	booking.Status = entity.StatusCancelled
	booking.ReservedUntil = sql.NullTime{}
	booking.CancellationReason = sql.NullString{String: cancelReasonExpired, Valid: true}
	booking.CancelledBy = sql.NullString{String: cancelActorSystem, Valid: true}
	booking.CancelledAt = sql.NullTime{Time: now, Valid: true}

	if err := u.repo.CancelBooking(ctx, &booking); err != nil {
		return false, err
	}

	if err := u.repo.IncrementRoomStock(ctx, booking.RoomTypeID, booking.CheckInDate, booking.CheckOutDate, booking.TotalRooms); err != nil {
		u.log.Error(ctx, "error restore room stock", err)
	}

	u.notify(ctx, request.NotificationPayment{
		ReferenceNumber: booking.ReferenceNumber,
		Message:         "your reservation hold expired and was released",
		EmailRecipient:  booking.GuestEmail,
	})

	return true, nil
}

// ShowBookings lists the bookings for one user.
func (u *usecase) ShowBookings(ctx context.Context, userID int64) ([]response.BookedRoom, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.BookedRoom, 0, len(bookings))
	for _, booking := range bookings {
		roomTypeName := ""
		roomType, err := u.repo.FindRoomTypeByID(ctx, booking.RoomTypeID)
		if err == nil {
			roomTypeName = roomType.Name
		}

		booked := response.BookedRoom{
			ReferenceNumber: booking.ReferenceNumber,
			RoomType:        roomTypeName,
			TotalRooms:      booking.TotalRooms,
			CheckInDate:     booking.CheckInDate.Format(dateLayout),
			CheckOutDate:    booking.CheckOutDate.Format(dateLayout),
			Subtotal:        booking.Subtotal,
			Discount:        booking.Discount,
			MealCost:        booking.MealCost,
			FinalPrice:      booking.FinalPrice,
			Status:          booking.Status,
		}
		if booking.ReservedUntil.Valid {
			booked.ReservedUntil = booking.ReservedUntil.Time.Format("2006-01-02 15:04:05")
		}

		// most recent payment attempt, if any
		payments, err := u.repo.FindPaymentsByBookingID(ctx, booking.ID)
		if err == nil && len(payments) > 0 {
			booked.PaymentStatus = payments[0].Status
			booked.PaymentProvider = payments[0].Provider
		}

		resp = append(resp, booked)
	}

	return resp, nil
}

// CheckAvailability reports remaining units straight from the database.
func (u *usecase) CheckAvailability(ctx context.Context, payload *request.CheckAvailability) (response.Availability, error) {
	checkIn, checkOut, err := parseStayDates(payload.CheckInDate, payload.CheckOutDate)
	if err != nil {
		return response.Availability{}, err
	}

	roomType, err := u.repo.FindRoomTypeByID(ctx, payload.RoomTypeID)
	if err != nil {
		return response.Availability{}, err
	}

	available, err := u.repo.CountAvailableUnits(ctx, payload.RoomTypeID, checkIn, checkOut, roomType.TotalUnits)
	if err != nil {
		return response.Availability{}, err
	}

	return response.Availability{
		RoomTypeID:     payload.RoomTypeID,
		CheckInDate:    payload.CheckInDate,
		CheckOutDate:   payload.CheckOutDate,
		AvailableUnits: available,
	}, nil
}

// CountPendingPayment backs the private operations endpoint.
func (u *usecase) CountPendingPayment(ctx context.Context, roomTypeID int64) (response.PendingPayment, error) {
	total, err := u.repo.CountPendingPaymentByRoomType(ctx, roomTypeID)
	if err != nil {
		return response.PendingPayment{}, err
	}
	return response.PendingPayment{RoomTypeID: roomTypeID, Total: total}, nil
}

func (u *usecase) notify(ctx context.Context, payload interface{}) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		u.log.Error(ctx, "error marshal notification", err)
		return
	}
	if err := u.publish.Publish(TopicNotification, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish notification", err)
	}
}
