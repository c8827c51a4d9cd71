package domain

import (
	"math"
	"testing"
)

func TestVendorApplyRating(t *testing.T) {
	vendor := &Vendor{}

	for _, rating := range []int{5, 3, 4} {
		vendor.ApplyRating(rating)
	}

	if vendor.ReviewCount != 3 {
		t.Errorf("review count = %d, want 3", vendor.ReviewCount)
	}
	if math.Abs(vendor.Rating-4.0) > 1e-9 {
		t.Errorf("rating = %v, want 4.0", vendor.Rating)
	}
}

func TestVendorApplyRatingFirstReview(t *testing.T) {
	vendor := &Vendor{}
	vendor.ApplyRating(5)

	if vendor.Rating != 5.0 {
		t.Errorf("rating = %v, want 5.0", vendor.Rating)
	}
	if vendor.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", vendor.ReviewCount)
	}
}

func TestHotelApplyRating(t *testing.T) {
	hotel := &Hotel{}

	hotel.ApplyRating(2)
	hotel.ApplyRating(4)

	if hotel.ReviewCount != 2 {
		t.Errorf("review count = %d, want 2", hotel.ReviewCount)
	}
	if math.Abs(hotel.Rating-3.0) > 1e-9 {
		t.Errorf("rating = %v, want 3.0", hotel.Rating)
	}
}
