package domain

import "testing"

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{RoleCustomer, true},
		{RoleShopkeeper, true},
		{Role("ADMIN"), false},
		{Role("customer"), false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.valid {
			t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.valid)
		}
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	tests := []struct {
		status OrderStatus
		valid  bool
	}{
		{OrderStatusCreated, true},
		{OrderStatusProcessing, true},
		{OrderStatusCancelled, true},
		{OrderStatusFulfilled, true},
		{OrderStatus("shipped"), false},
		{OrderStatus("CREATED"), false},
		{OrderStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.valid {
			t.Errorf("OrderStatus(%q).Valid() = %v, want %v", tt.status, got, tt.valid)
		}
	}
}
