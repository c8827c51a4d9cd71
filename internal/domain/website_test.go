package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{"valid simple", "acme", nil},
		{"valid with hyphen", "acme-hotels", nil},
		{"valid with digits", "store42", nil},
		{"minimum length", "ab", nil},
		{"too short", "a", ErrInvalidSlug},
		{"too long", strings.Repeat("a", 101), ErrInvalidSlug},
		{"uppercase", "Acme", ErrInvalidSlug},
		{"underscore", "acme_hotels", ErrInvalidSlug},
		{"space", "acme hotels", ErrInvalidSlug},
		{"empty", "", ErrInvalidSlug},
		{"reserved www", "www", ErrReservedSlug},
		{"reserved api", "api", ErrReservedSlug},
		{"reserved admin", "admin", ErrReservedSlug},
		{"reserved app", "app", ErrReservedSlug},
		{"reserved dashboard", "dashboard", ErrReservedSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, err, tt.wantErr)
			}
		})
	}
}

func TestWebsiteIsActive(t *testing.T) {
	for _, status := range []WebsiteStatus{WebsiteStatusDraft, WebsiteStatusInactive, WebsiteStatusSuspended} {
		w := &Website{Status: status}
		if w.IsActive() {
			t.Errorf("website with status %s should not be active", status)
		}
	}

	w := &Website{Status: WebsiteStatusActive}
	if !w.IsActive() {
		t.Error("website with status active should be active")
	}
}

func TestWebsiteTypeIsValid(t *testing.T) {
	valid := []WebsiteType{WebsiteTypeHotel, WebsiteTypeEcommerce, WebsiteTypeVehicle, WebsiteTypeWedding, WebsiteTypeBusiness}
	for _, typ := range valid {
		if !typ.IsValid() {
			t.Errorf("%s should be valid", typ)
		}
	}
	if WebsiteType("blog").IsValid() {
		t.Error("blog should not be a valid website type")
	}
}
