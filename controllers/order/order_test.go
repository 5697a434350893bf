package orderControllers

import (
	"strings"
	"testing"

	"github.com/sarelalush/Orel-site/models"
)

func TestMapOrderStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    models.OrderStatus
		wantErr bool
	}{
		{"pending", models.OrderStatusPending, false},
		{"Processing", models.OrderStatusProcessing, false},
		{"COMPLETED", models.OrderStatusCompleted, false},
		{"cancelled", models.OrderStatusCancelled, false},
		{"shipped", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := mapOrderStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("mapOrderStatus(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("mapOrderStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidTransition(t *testing.T) {
	allowed := map[[2]models.OrderStatus]bool{
		{models.OrderStatusPending, models.OrderStatusProcessing}:   true,
		{models.OrderStatusPending, models.OrderStatusCancelled}:    true,
		{models.OrderStatusProcessing, models.OrderStatusCompleted}: true,
		{models.OrderStatusProcessing, models.OrderStatusCancelled}: true,
	}

	all := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]models.OrderStatus{from, to}]
			if got := validTransition(from, to); got != want {
				t.Errorf("validTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestGenerateOrderRef(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()

	if a == b {
		t.Error("two refs collided")
	}
	if !strings.Contains(a, "-") {
		t.Errorf("ref %q missing timestamp separator", a)
	}
	if len(a) != 14+1+8 {
		t.Errorf("ref %q has unexpected length %d", a, len(a))
	}
}
