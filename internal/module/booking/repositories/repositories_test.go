package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"resort-booking-service/internal/module/booking/models/entity"
	"resort-booking-service/internal/module/booking/repositories"
	"resort-booking-service/internal/pkg/errors"
	"resort-booking-service/internal/pkg/log"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log.SetupLogger()
	log.Init(logZap)
}

func newRepo() repositories.Repositories {
	return repositories.New(dbx, log.GetLogger(), nil, nil, nil, nil)
}

func TestFindBookingByReference(t *testing.T) {
	setup()
	repo := newRepo()

	bookingID := uuid.New()
	query := regexp.QuoteMeta(`SELECT * FROM bookings WHERE reference_number = $1 AND deleted_at IS NULL`)

	testCases := []struct {
		name            string
		reference       string
		mockSetup       func()
		expectedError   error
		expectedBooking entity.Booking
	}{
		{
			name:      "booking found",
			reference: "RB-AAAA000001",
			mockSetup: func() {
				rows := sqlxmock.NewRows([]string{
					"id", "reference_number", "user_id", "room_type_id", "total_rooms", "status",
				}).AddRow(bookingID, "RB-AAAA000001", int64(1), int64(1), 1, entity.StatusPending)
				mock.ExpectQuery(query).WithArgs("RB-AAAA000001").WillReturnRows(rows)
			},
			expectedError: nil,
			expectedBooking: entity.Booking{
				ID:              bookingID,
				ReferenceNumber: "RB-AAAA000001",
				UserID:          1,
				RoomTypeID:      1,
				TotalRooms:      1,
				Status:          entity.StatusPending,
			},
		},
		{
			name:      "booking not found",
			reference: "RB-MISSING001",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("RB-MISSING001").WillReturnError(sql.ErrNoRows)
			},
			expectedError:   errors.ErrBookingNotFound,
			expectedBooking: entity.Booking{},
		},
		{
			name:      "database error",
			reference: "RB-BROKEN0001",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("RB-BROKEN0001").WillReturnError(sql.ErrConnDone)
			},
			expectedError:   errors.InternalServerError("error find booking by reference"),
			expectedBooking: entity.Booking{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			booking, err := repo.FindBookingByReference(context.Background(), tc.reference)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectedBooking, booking)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateBookingHold(t *testing.T) {
	countQuery := regexp.QuoteMeta("SELECT COALESCE(SUM(total_rooms), 0)")

	booking := &entity.Booking{
		ID:              uuid.New(),
		ReferenceNumber: "RB-AAAA000001",
		UserID:          1,
		RoomTypeID:      1,
		TotalRooms:      2,
		CheckInDate:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Status:          entity.StatusPending,
		ReservedUntil:   sql.NullTime{Time: time.Now().Add(2 * time.Hour), Valid: true},
	}

	t.Run("hold created when capacity remains", func(t *testing.T) {
		setup()
		repo := newRepo()

		mock.ExpectBegin()
		mock.ExpectQuery(countQuery).
			WithArgs(booking.RoomTypeID, booking.CheckOutDate, booking.CheckInDate).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(8))
		mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateBookingHold(context.Background(), booking, 10)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("capacity exceeded rolls back without insert", func(t *testing.T) {
		setup()
		repo := newRepo()

		mock.ExpectBegin()
		mock.ExpectQuery(countQuery).
			WithArgs(booking.RoomTypeID, booking.CheckOutDate, booking.CheckInDate).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(9))
		mock.ExpectRollback()

		err := repo.CreateBookingHold(context.Background(), booking, 10)

		assert.ErrorIs(t, err, errors.ErrCapacityExceeded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		setup()
		repo := newRepo()

		mock.ExpectBegin()
		mock.ExpectQuery(countQuery).
			WithArgs(booking.RoomTypeID, booking.CheckOutDate, booking.CheckInDate).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(0))
		mock.ExpectExec("INSERT INTO bookings").WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.CreateBookingHold(context.Background(), booking, 10)

		assert.Equal(t, errors.InternalServerError("error insert booking"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettleBooking(t *testing.T) {
	booking := &entity.Booking{
		ID:              uuid.New(),
		ReferenceNumber: "RB-AAAA000001",
		Status:          entity.StatusPaid,
	}
	payment := &entity.Payment{
		BookingID: booking.ID,
		Provider:  "midtrans",
		Status:    entity.PaymentStatusPaid,
		Amount:    240,
		Currency:  "USD",
		CreatedAt: time.Now(),
	}

	t.Run("payment row and status change commit together", func(t *testing.T) {
		setup()
		repo := newRepo()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SettleBooking(context.Background(), booking, payment)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status update failure rolls back the payment row", func(t *testing.T) {
		setup()
		repo := newRepo()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE bookings").WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.SettleBooking(context.Background(), booking, payment)

		assert.Equal(t, errors.InternalServerError("error update booking"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	repo := newRepo()

	booking := &entity.Booking{
		ID:                 uuid.New(),
		Status:             entity.StatusCancelled,
		CancellationReason: sql.NullString{String: "reservation hold expired", Valid: true},
		CancelledBy:        sql.NullString{String: "system", Valid: true},
		CancelledAt:        sql.NullTime{Time: time.Now(), Valid: true},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlxmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CancelBooking(context.Background(), booking)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindExpiredPendingBookings(t *testing.T) {
	setup()
	repo := newRepo()

	now := time.Now()
	bookingID := uuid.New()

	rows := sqlxmock.NewRows([]string{
		"id", "reference_number", "user_id", "room_type_id", "total_rooms", "status", "reserved_until",
	}).AddRow(bookingID, "RB-AAAA000001", int64(1), int64(1), 1, entity.StatusPending, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(now, 100).
		WillReturnRows(rows)

	bookings, err := repo.FindExpiredPendingBookings(context.Background(), now, 100)

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "RB-AAAA000001", bookings[0].ReferenceNumber)
	assert.True(t, bookings[0].ReservedUntil.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAvailableUnits(t *testing.T) {
	setup()
	repo := newRepo()

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	t.Run("remaining units", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_rooms), 0)")).
			WithArgs(int64(1), checkOut, checkIn).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(6))

		available, err := repo.CountAvailableUnits(context.Background(), 1, checkIn, checkOut, 10)

		assert.NoError(t, err)
		assert.Equal(t, 4, available)
	})

	t.Run("oversold window clamps to zero", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_rooms), 0)")).
			WithArgs(int64(1), checkOut, checkIn).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(12))

		available, err := repo.CountAvailableUnits(context.Background(), 1, checkIn, checkOut, 10)

		assert.NoError(t, err)
		assert.Equal(t, 0, available)
	})
}

func TestFindRoomTypeByID(t *testing.T) {
	setup()
	repo := newRepo()

	query := regexp.QuoteMeta(`SELECT * FROM room_types WHERE id = $1`)

	t.Run("room type found", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "name", "total_units", "base_price", "meal_price"}).
			AddRow(int64(1), "Deluxe", 10, 100.0, 10.0)
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)

		roomType, err := repo.FindRoomTypeByID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Deluxe", roomType.Name)
		assert.Equal(t, 10, roomType.TotalUnits)
	})

	t.Run("room type not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		_, err := repo.FindRoomTypeByID(context.Background(), 99)

		assert.Equal(t, errors.NotFound("room type not found"), err)
	})
}

func TestCountPendingPaymentByRoomType(t *testing.T) {
	setup()
	repo := newRepo()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(1)).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.CountPendingPaymentByRoomType(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
