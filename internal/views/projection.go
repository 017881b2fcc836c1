// AngelaMos | 2026
// projection.go

package views

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/authz"
)

type TierSummary struct {
	ID           string    `db:"id"            json:"id"`
	Name         string    `db:"name"          json:"name"`
	Level        int       `db:"level"         json:"level"`
	Description  *string   `db:"description"   json:"description,omitempty"`
	SponsorCount int       `db:"sponsor_count" json:"sponsor_count"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}

type SponsorRow struct {
	ID                      string    `db:"id"                        json:"id"`
	Name                    string    `db:"name"                      json:"name"`
	TierID                  string    `db:"tier_id"                   json:"tier_id"`
	TierName                string    `db:"tier_name"                 json:"tier_name"`
	TierLevel               int       `db:"tier_level"                json:"tier_level"`
	ContactName             *string   `db:"contact_name"              json:"contact_name,omitempty"`
	ContactEmail            *string   `db:"contact_email"             json:"contact_email,omitempty"`
	ContactPhone            *string   `db:"contact_phone"             json:"contact_phone,omitempty"`
	Address                 *string   `db:"address"                   json:"address,omitempty"`
	LogoURL                 *string   `db:"logo_url"                  json:"logo_url,omitempty"`
	SponsorshipAgreementURL *string   `db:"sponsorship_agreement_url" json:"sponsorship_agreement_url,omitempty"`
	ReceiptURL              *string   `db:"receipt_url"               json:"receipt_url,omitempty"`
	Fulfilled               bool      `db:"fulfilled"                 json:"fulfilled"`
	CreatedAt               time.Time `db:"created_at"                json:"created_at"`
	UpdatedAt               time.Time `db:"updated_at"                json:"updated_at"`
}

type EventRow struct {
	ID        string    `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Date      time.Time `db:"date"       json:"date"`
	Details   *string   `db:"details"    json:"details,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LinkedSponsor is a sponsor as seen through one of its event links.
type LinkedSponsor struct {
	LinkID    string `db:"link_id"    json:"link_id"`
	EventID   string `db:"event_id"   json:"event_id"`
	SponsorID string `db:"sponsor_id" json:"sponsor_id"`
	Name      string `db:"name"       json:"name"`
	TierName  string `db:"tier_name"  json:"tier_name"`
	TierLevel int    `db:"tier_level" json:"tier_level"`
	Fulfilled bool   `db:"fulfilled"  json:"fulfilled"`
}

type SponsorOption struct {
	ID   string `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

type UserRow struct {
	UserID     string     `db:"user_id"     json:"user_id"`
	FullName   *string    `db:"full_name"   json:"full_name,omitempty"`
	Email      string     `db:"email"       json:"email"`
	Role       authz.Role `db:"role"        json:"role"`
	IsApproved bool       `db:"is_approved" json:"is_approved"`
	CreatedAt  time.Time  `db:"created_at"  json:"created_at"`
}

type Stats struct {
	TotalEvents       int `db:"total_events"       json:"total_events"`
	UpcomingEvents    int `db:"upcoming_events"    json:"upcoming_events"`
	TotalSponsors     int `db:"total_sponsors"     json:"total_sponsors"`
	FulfilledSponsors int `db:"fulfilled_sponsors" json:"fulfilled_sponsors"`
}

type Dashboard struct {
	Stats        Stats      `json:"stats"`
	Role         authz.Role `json:"role"`
	CanManage    bool       `json:"can_manage"`
	RecentEvents []EventRow `json:"recent_events"`
}

type TierGroup struct {
	TierID    string       `json:"tier_id"`
	TierName  string       `json:"tier_name"`
	TierLevel int          `json:"tier_level"`
	Sponsors  []SponsorRow `json:"sponsors"`
}

type SponsorDetail struct {
	Sponsor SponsorRow `json:"sponsor"`
	Events  []EventRow `json:"events"`
}

type EventDetail struct {
	Event    EventRow        `json:"event"`
	Sponsors []LinkedSponsor `json:"sponsors"`
}

type EventWithSponsors struct {
	Event    EventRow        `json:"event"`
	Sponsors []LinkedSponsor `json:"sponsors"`
}

type LinkBoard struct {
	Events   []EventRow      `json:"events"`
	Sponsors []SponsorOption `json:"sponsors"`
	Links    []LinkedSponsor `json:"links"`
}

type ApprovalBoard struct {
	Pending       []UserRow `json:"pending"`
	ApprovedCount int       `json:"approved_count"`
}

// SponsorFilter narrows the sponsor listing. Search matches name and
// contact fields case-insensitively.
type SponsorFilter struct {
	Search    string
	TierID    string
	Fulfilled *bool
}

func ParseSponsorFilter(q url.Values) SponsorFilter {
	f := SponsorFilter{
		Search: strings.TrimSpace(q.Get("search")),
		TierID: strings.TrimSpace(q.Get("tier")),
	}

	switch strings.TrimSpace(q.Get("fulfilled")) {
	case "true", "fulfilled":
		v := true
		f.Fulfilled = &v
	case "false", "pending":
		v := false
		f.Fulfilled = &v
	}

	return f
}

// CacheField is the normalized form of the filter used as the hash field.
func (f SponsorFilter) CacheField() string {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", strings.ToLower(f.Search))
	}
	if f.TierID != "" {
		q.Set("tier", f.TierID)
	}
	if f.Fulfilled != nil {
		q.Set("fulfilled", strconv.FormatBool(*f.Fulfilled))
	}
	if len(q) == 0 {
		return "all"
	}
	return q.Encode()
}
