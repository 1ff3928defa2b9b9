package dto

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexString chấp nhận cả string lẫn number trong JSON upstream
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(string(data))
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlexFloat chấp nhận number hoặc chuỗi số; giá trị không parse được thành 0
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt chấp nhận số nguyên hoặc chuỗi số nguyên
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if ferr != nil {
			*i = 0
			return nil
		}
		v = int64(f)
	}
	*i = FlexInt(v)
	return nil
}

// RawOrder là payload đơn hàng thô từ core API. Cùng một giá trị logic
// (tên sự kiện, địa điểm, thời gian) có thể nằm ở nhiều key path khác nhau
// tùy theo nhánh join nào của backend đã populate dữ liệu.
type RawOrder struct {
	ID            FlexString       `json:"id"`
	OrderNumber   string           `json:"orderNumber"`
	OrderDate     string           `json:"orderDate"`
	CreatedAt     string           `json:"createdAt"`
	Status        string           `json:"status"`
	TotalAmount   FlexFloat        `json:"totalAmount"`
	PaymentMethod string           `json:"paymentMethod"`
	PaymentStatus string           `json:"paymentStatus"`
	Location      string           `json:"location"`
	Address       string           `json:"address"`
	EventDate     string           `json:"eventDate"`
	OrderDetails  []RawOrderDetail `json:"orderDetails"`
	Details       []RawOrderDetail `json:"details"`
}

// LineItems trả về danh sách order detail, chấp nhận cả hai key upstream
func (o *RawOrder) LineItems() []RawOrderDetail {
	if len(o.OrderDetails) > 0 {
		return o.OrderDetails
	}
	return o.Details
}

// RawOrderDetail là một line item trong đơn, tham chiếu một lượt mua vé
type RawOrderDetail struct {
	ID        FlexString `json:"id"`
	UnitPrice FlexFloat  `json:"unitPrice"`
	Quantity  *FlexInt   `json:"quantity"`
	Seat      *RawSeat   `json:"seat"`
	SeatCode  string     `json:"seatCode"`
	Ticket    *RawTicket `json:"ticket"`
}

// RawSeat là object ghế có cấu trúc (zone/row/number)
type RawSeat struct {
	Zone   string     `json:"zone"`
	Row    string     `json:"row"`
	Number FlexString `json:"number"`
}

type RawTicket struct {
	ID            FlexString `json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Price         FlexFloat  `json:"price"`
	Seat          string     `json:"seat"`
	SeatNumber    string     `json:"seatNumber"`
	EventID       *FlexInt   `json:"eventId"`
	EventDetailID *FlexInt   `json:"eventDetailId"`
	EventName     string     `json:"eventName"`
	Location      string     `json:"location"`
	Address       string     `json:"address"`
	StartTime     string     `json:"startTime"`
	EventDate     string     `json:"eventDate"`
	Event         *RawEvent  `json:"event"`
}

type RawEvent struct {
	ID        *FlexInt       `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Address   string         `json:"address"`
	StartTime string         `json:"startTime"`
	Date      string         `json:"date"`
	EventDate string         `json:"eventDate"`
	Details   []RawEventSlot `json:"eventDetails"`
}

// RawEventSlot là một suất diễn của sự kiện (thời gian/địa điểm/sức chứa)
type RawEventSlot struct {
	ID        *FlexInt `json:"id"`
	Location  string   `json:"location"`
	Address   string   `json:"address"`
	StartTime string   `json:"startTime"`
	Date      string   `json:"date"`
	Capacity  *FlexInt `json:"capacity"`
}

// EventDetailInfo là object enrichment trả về từ lookup suất diễn
type EventDetailInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Address  string `json:"address"`
	Time     string `json:"time"`
	Date     string `json:"date"`
}

// NormalizedTicket là view model vé đã chuẩn hóa cho UI.
// EventDate và Location luôn là chuỗi hiển thị khác rỗng.
type NormalizedTicket struct {
	ID            string  `json:"id"`
	EventName     string  `json:"eventName"`
	Type          string  `json:"type"`
	Seat          string  `json:"seat"`
	Price         float64 `json:"price"`
	Quantity      int64   `json:"quantity"`
	EventDate     string  `json:"eventDate"`
	Location      string  `json:"location"`
	EventID       int64   `json:"eventId,omitempty"`
	EventDetailID int64   `json:"eventDetailId,omitempty"`
}

// NormalizedOrder là view model đơn hàng đã chuẩn hóa cho UI
type NormalizedOrder struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"orderNumber"`
	OrderDate     string             `json:"orderDate"`
	Status        string             `json:"status"`
	TotalAmount   float64            `json:"totalAmount"`
	Tickets       []NormalizedTicket `json:"tickets"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	PaymentStatus string             `json:"paymentStatus,omitempty"`
	NeedsPayment  bool               `json:"needsPayment"`
}
