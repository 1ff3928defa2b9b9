package services

import (
	"testing"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
)

func TestNeedsPayment(t *testing.T) {
	cases := []struct {
		name          string
		status        string
		paymentStatus string
		want          bool
	}{
		{"unpaid luôn cần thanh toán", "unpaid", "", true},
		{"UNPAID viết hoa", "UNPAID", "paid", true},
		{"pending chưa thanh toán", "pending", "pending", true},
		{"pending không có payment status", "pending", "", true},
		{"pending đã thanh toán", "pending", "paid", false},
		{"Pending với PAID viết hoa", "Pending", "PAID", false},
		{"confirmed không cần", "confirmed", "pending", false},
		{"completed không cần", "completed", "", false},
		{"cancelled không cần", "cancelled", "failed", false},
		{"status có khoảng trắng", "  unpaid  ", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := dto.NormalizedOrder{Status: tc.status, PaymentStatus: tc.paymentStatus}
			if got := NeedsPayment(order); got != tc.want {
				t.Errorf("NeedsPayment(%q, %q) = %v, muốn %v", tc.status, tc.paymentStatus, got, tc.want)
			}
		})
	}
}

func TestTagPaymentEligibility(t *testing.T) {
	orders := []dto.NormalizedOrder{
		{ID: "1", Status: "unpaid"},
		{ID: "2", Status: "confirmed", PaymentStatus: "paid"},
		{ID: "3", Status: "pending", PaymentStatus: "failed"},
	}

	tagged := TagPaymentEligibility(orders)

	want := []bool{true, false, true}
	for i, order := range tagged {
		if order.NeedsPayment != want[i] {
			t.Errorf("đơn %s có NeedsPayment = %v, muốn %v", order.ID, order.NeedsPayment, want[i])
		}
	}
}
