package services

import (
	"strings"

	"github.com/Vinh-tho/Ticket-App-sub001/constants"
	"github.com/Vinh-tho/Ticket-App-sub001/dto"
)

// NeedsPayment cho biết đơn hàng còn cần thanh toán hay không.
// So sánh không phân biệt hoa thường vì status từ upstream không
// nhất quán về casing.
func NeedsPayment(order dto.NormalizedOrder) bool {
	status := strings.ToLower(strings.TrimSpace(order.Status))
	paymentStatus := strings.ToLower(strings.TrimSpace(order.PaymentStatus))

	if status == constants.OrderStatusUnpaid {
		return true
	}
	if status == constants.OrderStatusPending {
		return paymentStatus == "" || paymentStatus != constants.PaymentStatusPaid
	}
	return false
}

// TagPaymentEligibility gắn cờ needsPayment cho từng đơn đã chuẩn hóa
func TagPaymentEligibility(orders []dto.NormalizedOrder) []dto.NormalizedOrder {
	for i := range orders {
		orders[i].NeedsPayment = NeedsPayment(orders[i])
	}
	return orders
}
