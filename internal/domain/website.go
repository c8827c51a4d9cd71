package domain

import (
	"regexp"
	"time"
)

// WebsiteType is the closed set of storefront verticals
type WebsiteType string

const (
	WebsiteTypeHotel     WebsiteType = "hotel"
	WebsiteTypeEcommerce WebsiteType = "ecommerce"
	WebsiteTypeVehicle   WebsiteType = "vehicle"
	WebsiteTypeWedding   WebsiteType = "wedding"
	WebsiteTypeBusiness  WebsiteType = "business"
)

// IsValid returns true if the type is a known vertical
func (t WebsiteType) IsValid() bool {
	switch t {
	case WebsiteTypeHotel, WebsiteTypeEcommerce, WebsiteTypeVehicle, WebsiteTypeWedding, WebsiteTypeBusiness:
		return true
	}
	return false
}

// WebsiteStatus is the closed set of website lifecycle states
type WebsiteStatus string

const (
	WebsiteStatusDraft     WebsiteStatus = "draft"
	WebsiteStatusActive    WebsiteStatus = "active"
	WebsiteStatusInactive  WebsiteStatus = "inactive"
	WebsiteStatusSuspended WebsiteStatus = "suspended"
)

// IsValid returns true if the status is a known state
func (s WebsiteStatus) IsValid() bool {
	switch s {
	case WebsiteStatusDraft, WebsiteStatusActive, WebsiteStatusInactive, WebsiteStatusSuspended:
		return true
	}
	return false
}

// Website represents one vendor's storefront (the tenant unit). The slug is
// globally unique and immutable once created; only an active website is
// resolvable for public traffic.
type Website struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Slug      string                 `json:"slug"`
	Domain    string                 `json:"domain,omitempty"`
	Type      WebsiteType            `json:"type"`
	OwnerID   string                 `json:"owner_id"`
	Status    WebsiteStatus          `json:"status"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	DeletedAt *time.Time             `json:"deleted_at,omitempty"` // Soft delete support
}

// IsActive reports whether the website is resolvable for public traffic
func (w *Website) IsActive() bool {
	return w.Status == WebsiteStatusActive
}

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// ReservedSlugs are subdomains that never resolve to a tenant
var ReservedSlugs = []string{"www", "api", "admin", "app", "dashboard"}

// ValidateSlug checks slug format (lowercase alphanumeric and hyphens only)
// and length bounds
func ValidateSlug(slug string) error {
	if len(slug) < 2 || len(slug) > 100 {
		return ErrInvalidSlug
	}
	if !slugRegex.MatchString(slug) {
		return ErrInvalidSlug
	}
	for _, reserved := range ReservedSlugs {
		if slug == reserved {
			return ErrReservedSlug
		}
	}
	return nil
}
