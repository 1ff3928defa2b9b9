package services

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Vinh-tho/Ticket-App-sub001/constants"
	"github.com/Vinh-tho/Ticket-App-sub001/dto"
	"github.com/Vinh-tho/Ticket-App-sub001/services/logger"

	"github.com/goccy/go-json"
)

// EventDetailLookup là collaborator cung cấp dữ liệu enrichment cho một suất diễn
type EventDetailLookup interface {
	FetchEventDetailInfo(eventDetailID int64) (*dto.EventDetailInfo, error)
}

// OrderNormalizer chuẩn hóa danh sách đơn hàng thô của core API thành
// view model cho UI. Mọi lỗi dữ liệu per-item đều được nuốt và degrade
// xuống giá trị mặc định, không bao giờ làm hỏng cả batch.
type OrderNormalizer struct {
	lookup EventDetailLookup
	logger logger.Logger
	now    func() time.Time
}

// NewOrderNormalizer tạo normalizer với lookup enrichment (có thể nil nếu
// không có nguồn enrichment)
func NewOrderNormalizer(lookup EventDetailLookup, log logger.Logger) *OrderNormalizer {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &OrderNormalizer{
		lookup: lookup,
		logger: log,
		now:    time.Now,
	}
}

// DecodeOrdersPayload chấp nhận payload {data: [...]} hoặc mảng trần.
// Mọi shape khác (null, object thiếu data, chuỗi) cho ra danh sách rỗng.
func DecodeOrdersPayload(data []byte) []dto.RawOrder {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []dto.RawOrder{}
	}

	if data[0] == '[' {
		var orders []dto.RawOrder
		if err := json.Unmarshal(data, &orders); err != nil {
			return []dto.RawOrder{}
		}
		return orders
	}

	if data[0] == '{' {
		var wrapped struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return []dto.RawOrder{}
		}
		inner := bytes.TrimSpace(wrapped.Data)
		if len(inner) == 0 || inner[0] != '[' {
			return []dto.RawOrder{}
		}
		var orders []dto.RawOrder
		if err := json.Unmarshal(inner, &orders); err != nil {
			return []dto.RawOrder{}
		}
		return orders
	}

	return []dto.RawOrder{}
}

// Normalize chuẩn hóa từng đơn hàng. Các lookup enrichment của mọi vé
// trong mọi đơn chạy song song không giới hạn; thứ tự đơn và thứ tự vé
// trong đơn luôn giữ nguyên theo input.
func (n *OrderNormalizer) Normalize(rawOrders []dto.RawOrder) []dto.NormalizedOrder {
	results := make([]dto.NormalizedOrder, len(rawOrders))

	var wg sync.WaitGroup
	for i := range rawOrders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = n.normalizeOrder(&rawOrders[i])
		}(i)
	}
	wg.Wait()

	return results
}

// NormalizePayload decode payload thô rồi chuẩn hóa
func (n *OrderNormalizer) NormalizePayload(data []byte) []dto.NormalizedOrder {
	return n.Normalize(DecodeOrdersPayload(data))
}

const displayDateLayout = "02/01/2006"

// Các layout ngày giờ mà core API từng trả về
var upstreamDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// formatDisplayDate parse ứng viên đầu tiên không rỗng và format kiểu
// Việt Nam; parse thất bại thì trả nguyên chuỗi gốc
func formatDisplayDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range upstreamDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return raw
}

// firstNonEmpty chạy chuỗi accessor theo đúng thứ tự ưu tiên và trả về
// kết quả đầu tiên khác rỗng
func firstNonEmpty(candidates []func() string) string {
	for _, candidate := range candidates {
		if v := strings.TrimSpace(candidate()); v != "" {
			return v
		}
	}
	return ""
}

func (n *OrderNormalizer) normalizeOrder(raw *dto.RawOrder) dto.NormalizedOrder {
	details := raw.LineItems()
	tickets := make([]dto.NormalizedTicket, len(details))

	var wg sync.WaitGroup
	for i := range details {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tickets[i] = n.normalizeTicket(raw, &details[i])
		}(i)
	}
	wg.Wait()

	order := dto.NormalizedOrder{
		ID:            raw.ID.String(),
		OrderNumber:   raw.OrderNumber,
		Status:        strings.ToLower(strings.TrimSpace(raw.Status)),
		TotalAmount:   float64(raw.TotalAmount),
		Tickets:       tickets,
		PaymentMethod: raw.PaymentMethod,
		PaymentStatus: strings.ToLower(strings.TrimSpace(raw.PaymentStatus)),
	}

	if order.OrderNumber == "" {
		order.OrderNumber = "#" + order.ID
	}
	if order.Status == "" {
		order.Status = constants.OrderStatusPending
	}

	orderDate := firstNonEmpty([]func() string{
		func() string { return raw.OrderDate },
		func() string { return raw.CreatedAt },
	})
	if orderDate == "" {
		order.OrderDate = n.now().Format(displayDateLayout)
	} else {
		order.OrderDate = formatDisplayDate(orderDate)
	}

	// Đơn pending mà chưa thanh toán được coi là "unpaid" — chuẩn hóa
	// chủ động phía gateway, không phải passthrough trạng thái server
	if order.Status == constants.OrderStatusPending && order.PaymentStatus != constants.PaymentStatusPaid {
		order.Status = constants.OrderStatusUnpaid
		order.PaymentStatus = constants.PaymentStatusUnpaid
	}

	return order
}

func (n *OrderNormalizer) normalizeTicket(raw *dto.RawOrder, detail *dto.RawOrderDetail) dto.NormalizedTicket {
	ticket := detail.Ticket
	if ticket == nil {
		ticket = &dto.RawTicket{}
	}
	event := ticket.Event
	if event == nil {
		event = &dto.RawEvent{}
	}

	var eventID int64
	if event.ID != nil && *event.ID != 0 {
		eventID = int64(*event.ID)
	} else if ticket.EventID != nil {
		eventID = int64(*ticket.EventID)
	}

	var eventDetailID int64
	if ticket.EventDetailID != nil {
		eventDetailID = int64(*ticket.EventDetailID)
	}

	slot := matchEventSlot(event, eventDetailID)
	info := n.lookupEventDetail(eventDetailID)

	location := firstNonEmpty([]func() string{
		func() string { return slot.Location },
		func() string { return info.Location },
		func() string { return info.Address },
		func() string { return ticket.Location },
		func() string { return ticket.Address },
		func() string { return event.Location },
		func() string { return event.Address },
		func() string { return raw.Location },
		func() string { return raw.Address },
	})
	if location == "" {
		location = constants.UnknownValue
	}

	eventDate := firstNonEmpty([]func() string{
		func() string { return slot.StartTime },
		func() string { return slot.Date },
		func() string { return info.Time },
		func() string { return info.Date },
		func() string { return ticket.StartTime },
		func() string { return ticket.EventDate },
		func() string { return event.StartTime },
		func() string { return event.Date },
		func() string { return event.EventDate },
		func() string { return raw.EventDate },
	})
	if eventDate == "" {
		eventDate = constants.UnknownValue
	} else {
		eventDate = formatDisplayDate(eventDate)
	}

	eventName := firstNonEmpty([]func() string{
		func() string { return ticket.EventName },
		func() string { return event.Name },
		func() string { return info.Name },
		func() string { return ticket.Name },
	})
	if eventName == "" {
		eventName = constants.UnknownValue
	}

	price := float64(detail.UnitPrice)
	if price == 0 {
		price = float64(ticket.Price)
	}

	var quantity int64 = 1
	if detail.Quantity != nil {
		quantity = int64(*detail.Quantity)
	}

	ticketType := strings.TrimSpace(ticket.Type)
	if ticketType == "" {
		ticketType = "Vé thường"
	}

	id := detail.ID.String()
	if id == "" {
		id = ticket.ID.String()
	}

	return dto.NormalizedTicket{
		ID:            id,
		EventName:     eventName,
		Type:          ticketType,
		Seat:          deriveSeat(detail, ticket),
		Price:         price,
		Quantity:      quantity,
		EventDate:     eventDate,
		Location:      location,
		EventID:       eventID,
		EventDetailID: eventDetailID,
	}
}

// matchEventSlot tìm suất diễn khớp eventDetailId trong event lồng nhau.
// Không khớp thì trả slot rỗng để chuỗi fallback đi tiếp.
func matchEventSlot(event *dto.RawEvent, eventDetailID int64) *dto.RawEventSlot {
	if eventDetailID != 0 {
		for i := range event.Details {
			slot := &event.Details[i]
			if slot.ID != nil && int64(*slot.ID) == eventDetailID {
				return slot
			}
		}
	}
	return &dto.RawEventSlot{}
}

// lookupEventDetail gọi enrichment lookup; mọi lỗi chỉ được log và trả
// object rỗng để các field rơi xuống nguồn kế tiếp trong chuỗi
func (n *OrderNormalizer) lookupEventDetail(eventDetailID int64) *dto.EventDetailInfo {
	if eventDetailID == 0 || n.lookup == nil {
		return &dto.EventDetailInfo{}
	}

	info, err := n.fetchEventDetailSafe(eventDetailID)
	if err != nil || info == nil {
		if err != nil {
			n.logger.Warn("Lookup event detail %d thất bại: %v", eventDetailID, err)
		}
		return &dto.EventDetailInfo{}
	}
	return info
}

// fetchEventDetailSafe bọc lookup để một collaborator panic cũng không
// kéo sập cả batch chuẩn hóa
func (n *OrderNormalizer) fetchEventDetailSafe(eventDetailID int64) (info *dto.EventDetailInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			info = nil
			err = fmt.Errorf("lookup panic: %v", r)
		}
	}()
	return n.lookup.FetchEventDetailInfo(eventDetailID)
}

// deriveSeat dựng chuỗi ghế hiển thị từ object ghế có cấu trúc hoặc các
// field phẳng của vé
func deriveSeat(detail *dto.RawOrderDetail, ticket *dto.RawTicket) string {
	if s := detail.Seat; s != nil {
		zone := strings.TrimSpace(s.Zone)
		row := strings.TrimSpace(s.Row)
		number := strings.TrimSpace(s.Number.String())
		if zone != "" || row != "" || number != "" {
			return zone + row + "-" + number
		}
	}

	seat := firstNonEmpty([]func() string{
		func() string { return detail.SeatCode },
		func() string { return ticket.Seat },
		func() string { return ticket.SeatNumber },
	})
	if seat == "" {
		return constants.SeatNotPicked
	}
	return seat
}
