package request

type CreateBooking struct {
	RoomTypeID   int64  `json:"room_type_id" validate:"required"`
	TotalRooms   int    `json:"total_rooms" validate:"required,min=1"`
	Adults       int    `json:"adults" validate:"required,min=1"`
	Children     int    `json:"children" validate:"min=0"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	GuestName    string `json:"guest_name" validate:"required"`
	GuestEmail   string `json:"guest_email" validate:"required,email"`
	GuestPhone   string `json:"guest_phone" validate:"required"`
	PromoCode    string `json:"promo_code"`
	UserID       int64  `json:"user_id"`
}

type Payment struct {
	ReferenceNumber string  `json:"reference_number" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Provider        string  `json:"provider" validate:"required"`
}

type PaymentCancellation struct {
	ReferenceNumber string `json:"reference_number" validate:"required"`
	Reason          string `json:"reason" validate:"required"`
}

type CheckAvailability struct {
	RoomTypeID   int64  `json:"room_type_id" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

type GatewayCharge struct {
	ReferenceNumber string  `json:"reference_number"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Provider        string  `json:"provider"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type NotificationInvoice struct {
	ReferenceNumber string  `json:"reference_number" validate:"required"`
	FinalPrice      float64 `json:"final_price" validate:"required"`
	ReservedUntil   string  `json:"reserved_until" validate:"required"`
	EmailRecipient  string  `json:"email_recipient" validate:"required"`
}

type NotificationPayment struct {
	ReferenceNumber string `json:"reference_number" validate:"required"`
	Message         string `json:"message" validate:"required"`
	Provider        string `json:"provider"`
	EmailRecipient  string `json:"email_recipient" validate:"required"`
}
