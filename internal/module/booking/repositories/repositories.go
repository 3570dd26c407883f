package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"resort-booking-service/config"
	"resort-booking-service/internal/module/booking/models/entity"
	"resort-booking-service/internal/module/booking/models/request"
	"resort-booking-service/internal/module/booking/models/response"
	"resort-booking-service/internal/pkg/errors"
	"resort-booking-service/internal/pkg/helpers"
	"resort-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	httpClient  *circuit.HTTPClient
	redisClient *redis.Client
	cfgIdentity *config.IdentityServiceConfig
	cfgGateway  *config.PaymentGatewayConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.IdentityValidate, error)
	ChargePayment(ctx context.Context, payload request.GatewayCharge) (response.GatewayResult, error)
	// redis
	CheckRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) (int64, error)
	SeedRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, units int) error
	DecrementRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, total int) error
	IncrementRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, total int) error
	// db
	CreateBookingHold(ctx context.Context, booking *entity.Booking, totalUnits int) error
	FindBookingByReference(ctx context.Context, reference string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error)
	FindExpiredPendingBookings(ctx context.Context, now time.Time, limit int) ([]entity.Booking, error)
	SettleBooking(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error
	CancelBooking(ctx context.Context, booking *entity.Booking) error
	CountAvailableUnits(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, totalUnits int) (int, error)
	CountPendingPaymentByRoomType(ctx context.Context, roomTypeID int64) (int64, error)
	FindRoomTypeByID(ctx context.Context, roomTypeID int64) (entity.RoomType, error)
	FindActivePromoByCode(ctx context.Context, code string, at time.Time) (entity.Promo, error)
	FindPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Payment, error)
}

func New(
	db *sqlx.DB,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	redisClient *redis.Client,
	cfgIdentity *config.IdentityServiceConfig,
	cfgGateway *config.PaymentGatewayConfig,
) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		httpClient:  httpClient,
		redisClient: redisClient,
		cfgIdentity: cfgIdentity,
		cfgGateway:  cfgGateway,
	}
}

func stockKey(roomTypeID int64, date time.Time) string {
	return fmt.Sprintf("room_stock:%d:%s", roomTypeID, date.Format("2006-01-02"))
}

// CheckRoomStock implements Repositories. It returns the lowest counter
// across the stay nights. Nights without a seeded counter are skipped;
// the database capacity check stays the authority.
func (r *repositories) CheckRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) (int64, error) {
	lowest := int64(-1)
	for _, date := range helpers.StayDates(checkIn, checkOut) {
		data, err := r.redisClient.Get(ctx, stockKey(roomTypeID, date)).Int64()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return 0, errors.InternalServerError("error get room stock")
		}
		if lowest < 0 || data < lowest {
			lowest = data
		}
	}
	return lowest, nil
}

// SeedRoomStock implements Repositories. SetNX keeps an already-tracked
// counter untouched.
func (r *repositories) SeedRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, units int) error {
	for _, date := range helpers.StayDates(checkIn, checkOut) {
		if err := r.redisClient.SetNX(ctx, stockKey(roomTypeID, date), units, 0).Err(); err != nil {
			return errors.InternalServerError("error seed room stock")
		}
	}
	return nil
}

// DecrementRoomStock implements Repositories.
func (r *repositories) DecrementRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, total int) error {
	for _, date := range helpers.StayDates(checkIn, checkOut) {
		if err := r.redisClient.DecrBy(ctx, stockKey(roomTypeID, date), int64(total)).Err(); err != nil {
			return errors.InternalServerError("error decrement room stock")
		}
	}
	return nil
}

// IncrementRoomStock implements Repositories.
func (r *repositories) IncrementRoomStock(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, total int) error {
	for _, date := range helpers.StayDates(checkIn, checkOut) {
		if err := r.redisClient.IncrBy(ctx, stockKey(roomTypeID, date), int64(total)).Err(); err != nil {
			return errors.InternalServerError("error increment room stock")
		}
	}
	return nil
}

// CreateBookingHold implements Repositories. The capacity re-check and
// the insert share one transaction so concurrent holds cannot oversell
// even if the fast-path counters drifted.
func (r *repositories) CreateBookingHold(ctx context.Context, booking *entity.Booking, totalUnits int) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	booked, err := r.countBookedUnits(ctx, tx, booking.RoomTypeID, booking.CheckInDate, booking.CheckOutDate)
	if err != nil {
		tx.Rollback()
		return err
	}

	if totalUnits-booked < booking.TotalRooms {
		tx.Rollback()
		return errors.ErrCapacityExceeded
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (
			id, reference_number, user_id, guest_name, guest_email, guest_phone,
			room_type_id, total_rooms, adults, children, check_in_date, check_out_date,
			subtotal, discount, meal_cost, final_price, status, reserved_until,
			failed_payment_attempts, created_at
		) VALUES (
			:id, :reference_number, :user_id, :guest_name, :guest_email, :guest_phone,
			:room_type_id, :total_rooms, :adults, :children, :check_in_date, :check_out_date,
			:subtotal, :discount, :meal_cost, :final_price, :status, :reserved_until,
			:failed_payment_attempts, :created_at
		)
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

func (r *repositories) countBookedUnits(ctx context.Context, tx *sqlx.Tx, roomTypeID int64, checkIn, checkOut time.Time) (int, error) {
	var booked int
	err := tx.GetContext(ctx, &booked, `
		SELECT COALESCE(SUM(total_rooms), 0)
		FROM bookings
		WHERE room_type_id = $1
		  AND status IN ('pending', 'downpayment', 'paid')
		  AND check_in_date < $2
		  AND check_out_date > $3
	`, roomTypeID, checkOut, checkIn)
	if err != nil {
		return 0, errors.InternalServerError("error count booked units")
	}
	return booked, nil
}

// CountAvailableUnits implements Repositories.
func (r *repositories) CountAvailableUnits(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time, totalUnits int) (int, error) {
	var booked int
	err := r.db.GetContext(ctx, &booked, `
		SELECT COALESCE(SUM(total_rooms), 0)
		FROM bookings
		WHERE room_type_id = $1
		  AND status IN ('pending', 'downpayment', 'paid')
		  AND check_in_date < $2
		  AND check_out_date > $3
	`, roomTypeID, checkOut, checkIn)
	if err != nil {
		return 0, errors.InternalServerError("error count booked units")
	}
	available := totalUnits - booked
	if available < 0 {
		available = 0
	}
	return available, nil
}

// FindBookingByReference implements Repositories.
func (r *repositories) FindBookingByReference(ctx context.Context, reference string) (entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE reference_number = $1 AND deleted_at IS NULL`, reference)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.ErrBookingNotFound
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by reference")
	}
	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, `SELECT * FROM bookings WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// FindExpiredPendingBookings implements Repositories.
func (r *repositories) FindExpiredPendingBookings(ctx context.Context, now time.Time, limit int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT * FROM bookings
		WHERE status = 'pending'
		  AND reserved_until IS NOT NULL
		  AND reserved_until < $1
		  AND deleted_at IS NULL
		ORDER BY reserved_until ASC
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, errors.InternalServerError("error find expired pending bookings")
	}
	return bookings, nil
}

// SettleBooking implements Repositories. The payment row and the
// booking status change commit together or not at all.
func (r *repositories) SettleBooking(ctx context.Context, booking *entity.Booking, payment *entity.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO payments (
			booking_id, provider, status, amount, currency, error_code, error_message,
			proof_upload_count, proof_review_status, created_at
		) VALUES (
			:booking_id, :provider, :status, :amount, :currency, :error_code, :error_message,
			:proof_upload_count, :proof_review_status, :created_at
		)
	`, payment)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error insert payment")
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE bookings
		SET status = :status,
		    reserved_until = :reserved_until,
		    failed_payment_attempts = :failed_payment_attempts,
		    updated_at = NOW()
		WHERE id = :id
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error update booking")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// CancelBooking implements Repositories.
func (r *repositories) CancelBooking(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE bookings
		SET status = :status,
		    reserved_until = NULL,
		    cancellation_reason = :cancellation_reason,
		    cancelled_by = :cancelled_by,
		    cancelled_at = :cancelled_at,
		    updated_at = NOW()
		WHERE id = :id
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error cancel booking")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// CountPendingPaymentByRoomType implements Repositories.
func (r *repositories) CountPendingPaymentByRoomType(ctx context.Context, roomTypeID int64) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM bookings
		WHERE room_type_id = $1 AND status = 'pending' AND deleted_at IS NULL
	`, roomTypeID)
	if err != nil {
		return 0, errors.InternalServerError("error count pending payment")
	}
	return total, nil
}

// FindRoomTypeByID implements Repositories.
func (r *repositories) FindRoomTypeByID(ctx context.Context, roomTypeID int64) (entity.RoomType, error) {
	var roomType entity.RoomType
	err := r.db.GetContext(ctx, &roomType, `SELECT * FROM room_types WHERE id = $1`, roomTypeID)
	if err == sql.ErrNoRows {
		return entity.RoomType{}, errors.NotFound("room type not found")
	}
	if err != nil {
		return entity.RoomType{}, errors.InternalServerError("error find room type by id")
	}
	return roomType, nil
}

// FindActivePromoByCode implements Repositories.
func (r *repositories) FindActivePromoByCode(ctx context.Context, code string, at time.Time) (entity.Promo, error) {
	var promo entity.Promo
	err := r.db.GetContext(ctx, &promo, `
		SELECT * FROM promos
		WHERE code = $1 AND active = TRUE AND valid_from <= $2 AND valid_until >= $2
	`, code, at)
	if err == sql.ErrNoRows {
		return entity.Promo{}, errors.NotFound("promo not found")
	}
	if err != nil {
		return entity.Promo{}, errors.InternalServerError("error find promo by code")
	}
	return promo, nil
}

// FindPaymentsByBookingID implements Repositories.
func (r *repositories) FindPaymentsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.SelectContext(ctx, &payments, `SELECT * FROM payments WHERE booking_id = $1 ORDER BY created_at DESC`, bookingID)
	if err != nil {
		return nil, errors.InternalServerError("error find payments by booking id")
	}
	return payments, nil
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.IdentityValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgIdentity.Host, r.cfgIdentity.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.IdentityValidate{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.IdentityValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.IdentityValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.IdentityValidate{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.IdentityValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// ChargePayment implements Repositories. The gateway is reached through
// the circuit breaker; a failed charge is a result, not an error.
func (r *repositories) ChargePayment(ctx context.Context, payload request.GatewayCharge) (response.GatewayResult, error) {
	url := fmt.Sprintf("http://%s:%s/api/v1/charge", r.cfgGateway.Host, r.cfgGateway.Port)

	body, err := json.Marshal(payload)
	if err != nil {
		return response.GatewayResult{}, errors.InternalServerError("error marshal charge payload")
	}

	resp, err := r.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return response.GatewayResult{}, err
	}

	defer resp.Body.Close()

	var result response.GatewayResult
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&result); err != nil {
		return response.GatewayResult{}, errors.InternalServerError("error decode gateway response")
	}

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "gateway rejected charge", resp.StatusCode)
		result.Success = false
	}

	return result, nil
}
