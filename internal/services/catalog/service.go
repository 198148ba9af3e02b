package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AdonesMapula/atay/internal/domain/model"
	"github.com/AdonesMapula/atay/internal/pkg/validate"
)

var (
	ErrInvalidInput = errors.New("invalid catalog input")
	ErrNotFound     = errors.New("catalog entry not found")
)

type EventStore interface {
	List(ctx context.Context) ([]model.Event, error)
	ListRecent(ctx context.Context, limit int) ([]model.Event, error)
	Create(ctx context.Context, event model.Event) (model.Event, error)
	Update(ctx context.Context, event model.Event) error
	Delete(ctx context.Context, id string) error
}

type TicketTypeStore interface {
	List(ctx context.Context) ([]model.TicketType, error)
	Create(ctx context.Context, ticket model.TicketType) (model.TicketType, error)
	Update(ctx context.Context, ticket model.TicketType) error
	Delete(ctx context.Context, id string) error
}

type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, product model.Product) (model.Product, error)
	Update(ctx context.Context, product model.Product) error
	Delete(ctx context.Context, id string) error
}

type EmceeStore interface {
	List(ctx context.Context) ([]model.Emcee, error)
	Create(ctx context.Context, emcee model.Emcee) (model.Emcee, error)
	Update(ctx context.Context, emcee model.Emcee) error
	Delete(ctx context.Context, id string) error
}

type PlaylistStore interface {
	List(ctx context.Context) ([]model.Playlist, error)
	Create(ctx context.Context, entry model.Playlist) (model.Playlist, error)
	Update(ctx context.Context, entry model.Playlist) error
	Delete(ctx context.Context, id string) error
}

// Service is the admin-facing CRUD layer behind the event, ticket, shop,
// emcee and playlist management screens.
type Service struct {
	events    EventStore
	tickets   TicketTypeStore
	products  ProductStore
	emcees    EmceeStore
	playlists PlaylistStore
}

func NewService(events EventStore, tickets TicketTypeStore, products ProductStore, emcees EmceeStore, playlists PlaylistStore) *Service {
	return &Service{
		events:    events,
		tickets:   tickets,
		products:  products,
		emcees:    emcees,
		playlists: playlists,
	}
}

func (s *Service) ListEvents(ctx context.Context) ([]model.Event, error) {
	if s.events == nil {
		return nil, fmt.Errorf("event store is not configured")
	}
	return s.events.List(ctx)
}

func (s *Service) RecentEvents(ctx context.Context, limit int) ([]model.Event, error) {
	if s.events == nil {
		return nil, fmt.Errorf("event store is not configured")
	}
	return s.events.ListRecent(ctx, limit)
}

func (s *Service) CreateEvent(ctx context.Context, event model.Event) (model.Event, error) {
	if s.events == nil {
		return model.Event{}, fmt.Errorf("event store is not configured")
	}
	if err := validateEvent(event); err != nil {
		return model.Event{}, err
	}
	return s.events.Create(ctx, event)
}

func (s *Service) UpdateEvent(ctx context.Context, event model.Event) error {
	if s.events == nil {
		return fmt.Errorf("event store is not configured")
	}
	if !validate.Required(event.ID) {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if err := validateEvent(event); err != nil {
		return err
	}
	return s.events.Update(ctx, event)
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if s.events == nil {
		return fmt.Errorf("event store is not configured")
	}
	if !validate.Required(id) {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	return s.events.Delete(ctx, id)
}

func (s *Service) ListTicketTypes(ctx context.Context) ([]model.TicketType, error) {
	if s.tickets == nil {
		return nil, fmt.Errorf("ticket type store is not configured")
	}
	return s.tickets.List(ctx)
}

func (s *Service) CreateTicketType(ctx context.Context, ticket model.TicketType) (model.TicketType, error) {
	if s.tickets == nil {
		return model.TicketType{}, fmt.Errorf("ticket type store is not configured")
	}
	if err := validateTicketType(ticket); err != nil {
		return model.TicketType{}, err
	}
	return s.tickets.Create(ctx, ticket)
}

func (s *Service) UpdateTicketType(ctx context.Context, ticket model.TicketType) error {
	if s.tickets == nil {
		return fmt.Errorf("ticket type store is not configured")
	}
	if !validate.Required(ticket.ID) {
		return fmt.Errorf("%w: ticket type id is required", ErrInvalidInput)
	}
	if err := validateTicketType(ticket); err != nil {
		return err
	}
	return s.tickets.Update(ctx, ticket)
}

func (s *Service) DeleteTicketType(ctx context.Context, id string) error {
	if s.tickets == nil {
		return fmt.Errorf("ticket type store is not configured")
	}
	if !validate.Required(id) {
		return fmt.Errorf("%w: ticket type id is required", ErrInvalidInput)
	}
	return s.tickets.Delete(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]model.Product, error) {
	if s.products == nil {
		return nil, fmt.Errorf("product store is not configured")
	}
	return s.products.List(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	if s.products == nil {
		return model.Product{}, fmt.Errorf("product store is not configured")
	}
	if err := validateProduct(product); err != nil {
		return model.Product{}, err
	}
	product.Sizes = normalizeSizes(product.Sizes)
	return s.products.Create(ctx, product)
}

func (s *Service) UpdateProduct(ctx context.Context, product model.Product) error {
	if s.products == nil {
		return fmt.Errorf("product store is not configured")
	}
	if !validate.Required(product.ID) {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	if err := validateProduct(product); err != nil {
		return err
	}
	product.Sizes = normalizeSizes(product.Sizes)
	return s.products.Update(ctx, product)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if s.products == nil {
		return fmt.Errorf("product store is not configured")
	}
	if !validate.Required(id) {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	return s.products.Delete(ctx, id)
}

func (s *Service) ListEmcees(ctx context.Context) ([]model.Emcee, error) {
	if s.emcees == nil {
		return nil, fmt.Errorf("emcee store is not configured")
	}
	return s.emcees.List(ctx)
}

func (s *Service) CreateEmcee(ctx context.Context, emcee model.Emcee) (model.Emcee, error) {
	if s.emcees == nil {
		return model.Emcee{}, fmt.Errorf("emcee store is not configured")
	}
	if !validate.Required(emcee.Name) {
		return model.Emcee{}, fmt.Errorf("%w: emcee name is required", ErrInvalidInput)
	}
	return s.emcees.Create(ctx, emcee)
}

func (s *Service) UpdateEmcee(ctx context.Context, emcee model.Emcee) error {
	if s.emcees == nil {
		return fmt.Errorf("emcee store is not configured")
	}
	if !validate.Required(emcee.ID) {
		return fmt.Errorf("%w: emcee id is required", ErrInvalidInput)
	}
	if !validate.Required(emcee.Name) {
		return fmt.Errorf("%w: emcee name is required", ErrInvalidInput)
	}
	return s.emcees.Update(ctx, emcee)
}

func (s *Service) DeleteEmcee(ctx context.Context, id string) error {
	if s.emcees == nil {
		return fmt.Errorf("emcee store is not configured")
	}
	if !validate.Required(id) {
		return fmt.Errorf("%w: emcee id is required", ErrInvalidInput)
	}
	return s.emcees.Delete(ctx, id)
}

func (s *Service) ListPlaylist(ctx context.Context) ([]model.Playlist, error) {
	if s.playlists == nil {
		return nil, fmt.Errorf("playlist store is not configured")
	}
	return s.playlists.List(ctx)
}

func (s *Service) CreatePlaylistEntry(ctx context.Context, entry model.Playlist) (model.Playlist, error) {
	if s.playlists == nil {
		return model.Playlist{}, fmt.Errorf("playlist store is not configured")
	}
	if err := validatePlaylistEntry(entry); err != nil {
		return model.Playlist{}, err
	}
	return s.playlists.Create(ctx, entry)
}

func (s *Service) UpdatePlaylistEntry(ctx context.Context, entry model.Playlist) error {
	if s.playlists == nil {
		return fmt.Errorf("playlist store is not configured")
	}
	if !validate.Required(entry.ID) {
		return fmt.Errorf("%w: playlist entry id is required", ErrInvalidInput)
	}
	if err := validatePlaylistEntry(entry); err != nil {
		return err
	}
	return s.playlists.Update(ctx, entry)
}

func (s *Service) DeletePlaylistEntry(ctx context.Context, id string) error {
	if s.playlists == nil {
		return fmt.Errorf("playlist store is not configured")
	}
	if !validate.Required(id) {
		return fmt.Errorf("%w: playlist entry id is required", ErrInvalidInput)
	}
	return s.playlists.Delete(ctx, id)
}

func validateEvent(event model.Event) error {
	if !validate.Required(event.Name) {
		return fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if !validate.ISODate(event.Date) {
		return fmt.Errorf("%w: event date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !validate.Required(event.Venue) {
		return fmt.Errorf("%w: event venue is required", ErrInvalidInput)
	}
	return nil
}

func validateTicketType(ticket model.TicketType) error {
	if !validate.Required(ticket.EventName) {
		return fmt.Errorf("%w: ticket event name is required", ErrInvalidInput)
	}
	if !validate.ISODate(ticket.EventDate) {
		return fmt.Errorf("%w: ticket event date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if ticket.PriceCents < 0 {
		return fmt.Errorf("%w: ticket price must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateProduct(product model.Product) error {
	if !validate.Required(product.Name) {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if product.PriceCents < 0 {
		return fmt.Errorf("%w: product price must not be negative", ErrInvalidInput)
	}
	return nil
}

func validatePlaylistEntry(entry model.Playlist) error {
	if !validate.Required(entry.Title) {
		return fmt.Errorf("%w: playlist title is required", ErrInvalidInput)
	}
	if !validate.Required(entry.Artist) {
		return fmt.Errorf("%w: playlist artist is required", ErrInvalidInput)
	}
	return nil
}

func normalizeSizes(sizes []string) []string {
	out := make([]string, 0, len(sizes))
	for _, size := range sizes {
		size = strings.TrimSpace(size)
		if size == "" {
			continue
		}
		out = append(out, size)
	}
	return out
}
