package api

import "time"

// Status is the lifecycle state the scraper assigns to a candidate event.
type Status string

const (
	StatusNew       Status = "new"
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusInactive  Status = "inactive"
	StatusImported  Status = "imported"
)

// Statuses lists the known statuses in display order.
func Statuses() []Status {
	return []Status{StatusNew, StatusUpdated, StatusUnchanged, StatusInactive, StatusImported}
}

// Source identifies where an event was scraped from.
type Source struct {
	Name     string `json:"name"`
	EventURL string `json:"eventUrl"`
}

// EventRecord is a scraped event as the server reports it. The client never
// mutates records directly; importing one transitions its status server-side.
type EventRecord struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	DateTime    *time.Time `json:"dateTime,omitempty"`
	Venue       string     `json:"venue,omitempty"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Source      Source     `json:"source"`
	Status      Status     `json:"status"`

	// Present only once the event has been imported.
	ImportedAt  *time.Time `json:"importedAt,omitempty"`
	ImportedBy  string     `json:"importedBy,omitempty"`
	ImportNotes string     `json:"importNotes,omitempty"`
}

// Importable reports whether the record may still be imported. Imported
// records must never be submitted again.
func (e EventRecord) Importable() bool {
	return e.Status != StatusImported
}

// Pagination mirrors the listing endpoint's paging envelope.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Stats aggregates event counts over the current city, ignoring pagination.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"byStatus"`
}

// Profile is the verified identity returned by the auth endpoint.
type Profile struct {
	Subject string `json:"sub,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// TicketRequest is the ticket-capture submission payload.
type TicketRequest struct {
	Email      string `json:"email"`
	Consent    bool   `json:"consent"`
	EventID    string `json:"eventId"`
	EventTitle string `json:"eventTitle"`
	EventURL   string `json:"eventUrl"`
}
