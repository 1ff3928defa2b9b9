package constants

// Order status (chuỗi status chuẩn hóa cho view model)
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusUnpaid    = "unpaid"
)

// Payment status
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusUnpaid  = "unpaid"
)

// Giá trị hiển thị mặc định khi chuỗi fallback không tìm được dữ liệu
const (
	UnknownValue  = "Không xác định"
	SeatNotPicked = "Chưa chọn"
)

// Push token platform
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)
