package domain

import (
	"strings"
	"time"
)

// Program is a scheduled consultancy program as stored in the programs collection
type Program struct {
	ID       string `json:"id"`        // Store-assigned document ID
	Name     string `json:"name"`      // Display name
	Date     string `json:"date"`      // ISO 8601 date or date-time, as stored
	Day      string `json:"day"`       // Day-of-week label, e.g. "Monday"
	ImageURL string `json:"image_url"` // Cover image
	Details  string `json:"details"`   // Free-text description
	Liked    int    `json:"liked"`     // Shared flag, always 0 or 1
}

// dateLayouts lists the formats a program date may be stored in
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses the stored date. The second return is false for malformed dates.
func (p Program) ParseDate() (time.Time, bool) {
	raw := strings.TrimSpace(p.Date)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Month returns the 0-based calendar month (0 = January) of the program date.
// The month is read in the date's own offset. Programs with a malformed date
// belong to no month.
func (p Program) Month() (int, bool) {
	t, ok := p.ParseDate()
	if !ok {
		return 0, false
	}
	return int(t.Month()) - 1, true
}

// IsLiked reports whether the shared liked flag is set
func (p Program) IsLiked() bool {
	return p.Liked == 1
}

// DisplayDate returns the date formatted for list cards, or the raw value if it does not parse
func (p Program) DisplayDate() string {
	t, ok := p.ParseDate()
	if !ok {
		return p.Date
	}
	return t.Format("Jan 2, 2006")
}

// NormalizeLiked clamps any stored liked value to 0 or 1
func NormalizeLiked(v int) int {
	if v != 0 {
		return 1
	}
	return 0
}

// Subscriber is a newsletter signup
type Subscriber struct {
	ID    string
	Name  string
	Email string
}

// ContactMessage is a message sent from the contact screen
type ContactMessage struct {
	ID      string
	Name    string
	Email   string
	Message string
}

// Service is a consultancy offering shown on the home screen
type Service struct {
	ID          string
	Title       string
	ImageURL    string
	Description string
}

// SocialProfile links to one of the company's social accounts
type SocialProfile struct {
	ID       string
	Platform string
	ImageURL string
	URL      string
}

// CompanyProfile holds the static content of the profile screen
type CompanyProfile struct {
	Name     string
	Summary  string // Short text on the About card
	About    string // Full text shown in the bottom sheet
	VideoURL string
	Socials  []SocialProfile
}

// MonthNames maps a 0-based month to its display name
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WrapMonth normalizes any month offset into 0..11
func WrapMonth(m int) int {
	return ((m % 12) + 12) % 12
}

// MonthName returns the display name of a month, wrapping out-of-range values
func MonthName(m int) string {
	return MonthNames[WrapMonth(m)]
}
