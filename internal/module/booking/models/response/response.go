package response

type IdentityValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	EmailUser string `json:"email_user"`
}

type GatewayResult struct {
	Success      bool   `json:"success"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type BookedRoom struct {
	ReferenceNumber string  `json:"reference_number"`
	RoomType        string  `json:"room_type"`
	TotalRooms      int     `json:"total_rooms"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	MealCost        float64 `json:"meal_cost"`
	FinalPrice      float64 `json:"final_price"`
	Status          string  `json:"status"`
	ReservedUntil   string  `json:"reserved_until,omitempty"`
	PaymentStatus   string  `json:"payment_status,omitempty"`
	PaymentProvider string  `json:"payment_provider,omitempty"`
}

type Availability struct {
	RoomTypeID     int64  `json:"room_type_id"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	AvailableUnits int    `json:"available_units"`
}

type PendingPayment struct {
	RoomTypeID int64 `json:"room_type_id"`
	Total      int64 `json:"total"`
}

type SweepResult struct {
	Released int `json:"released"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
