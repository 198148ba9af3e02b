package dto

type EventRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	ImageKey    string `json:"image_key,omitempty"`
}

type TicketTypeRequest struct {
	EventName  string `json:"event_name"`
	EventDate  string `json:"event_date"`
	Venue      string `json:"venue"`
	PriceCents int64  `json:"price_cents"`
	ImageKey   string `json:"image_key,omitempty"`
}

type ProductRequest struct {
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	Sizes      []string `json:"sizes"`
	PriceCents int64    `json:"price_cents"`
	ImageKey   string   `json:"image_key,omitempty"`
}

type EmceeRequest struct {
	Name     string   `json:"name"`
	Bio      string   `json:"bio"`
	Socials  []string `json:"socials"`
	ImageKey string   `json:"image_key,omitempty"`
}

type PlaylistRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

type DeleteResponse struct {
	OK bool `json:"ok"`
}
