package domain

import "testing"

func TestNewOrder(t *testing.T) {
	items := []OrderItem{
		{ProductID: "p1", Name: "Mug", Quantity: 2, UnitPrice: 10},
		{ProductID: "p2", Name: "Shirt", Quantity: 1, UnitPrice: 25},
	}

	order, err := NewOrder("website-1", "vendor-1", "customer-1", items)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}

	if order.Status != OrderStatusPending {
		t.Errorf("status = %s, want %s", order.Status, OrderStatusPending)
	}
	if order.Currency != "USD" {
		t.Errorf("currency = %q, want USD", order.Currency)
	}
	if order.Items[0].Subtotal != 20 || order.Items[1].Subtotal != 25 {
		t.Errorf("subtotals = %v, %v", order.Items[0].Subtotal, order.Items[1].Subtotal)
	}
	if order.Total != 45 {
		t.Errorf("total = %v, want 45", order.Total)
	}
}

func TestNewOrderValidation(t *testing.T) {
	items := []OrderItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}

	if _, err := NewOrder("", "vendor-1", "customer-1", items); err == nil {
		t.Error("expected error for missing website_id")
	}
	if _, err := NewOrder("website-1", "vendor-1", "customer-1", nil); err == nil {
		t.Error("expected error for empty items")
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("returned").IsValid() {
		t.Error("returned should not be a valid order status")
	}
}
