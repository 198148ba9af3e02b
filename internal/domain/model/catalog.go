package model

import "time"

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	ImageKey    string    `json:"image_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TicketType is a sellable ticket for an event, as managed on the
// ticket-creation screen. Distinct from a sold ticket purchase.
type TicketType struct {
	ID         string    `json:"id"`
	EventName  string    `json:"event_name"`
	EventDate  string    `json:"event_date"`
	Venue      string    `json:"venue"`
	PriceCents int64     `json:"price_cents"`
	ImageKey   string    `json:"image_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Sizes      []string  `json:"sizes"`
	PriceCents int64     `json:"price_cents"`
	ImageKey   string    `json:"image_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Emcee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Socials   []string  `json:"socials"`
	ImageKey  string    `json:"image_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Playlist struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
