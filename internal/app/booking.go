package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
)

// DefaultGuests is the guest count on the hotel page when none is chosen.
const DefaultGuests = 2

type BookingRequest struct {
	HotelID  int64
	RoomID   string
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   int
}

type BookingService struct {
	q     *QueryService
	newID func() string
}

func NewBookingService(q *QueryService) *BookingService {
	return &BookingService{q: q, newID: func() string { return uuid.NewString() }}
}

// AttemptBooking runs the booking gate and, when it passes, returns a confirmation
// for the priced stay. Nothing is reserved or persisted.
func (s *BookingService) AttemptBooking(ctx context.Context, req BookingRequest) (domain.BookingConfirmation, error) {
	h, err := s.q.GetHotel(ctx, req.HotelID)
	if err != nil {
		observability.ObserveBooking("error")
		return domain.BookingConfirmation{}, err
	}
	room, ok := h.Room(req.RoomID)
	if !ok {
		observability.ObserveBooking("rejected")
		return domain.BookingConfirmation{}, &domain.ValidationError{Field: "room", Msg: "hotel has no rooms"}
	}

	guests := req.Guests
	if guests == 0 {
		guests = DefaultGuests
	}
	sel := domain.StaySelection{CheckIn: req.CheckIn, CheckOut: req.CheckOut, GuestCount: guests, SelectedRoom: room}
	if err := sel.ValidateForBooking(); err != nil {
		observability.ObserveBooking("rejected")
		return domain.BookingConfirmation{}, err
	}

	conf := domain.BookingConfirmation{
		Reference: s.newID(),
		HotelID:   h.ID,
		HotelName: h.Name,
		Room:      room,
		Guests:    guests,
		CheckIn:   formatDay(req.CheckIn),
		CheckOut:  formatDay(req.CheckOut),
		Price:     sel.Breakdown(),
	}
	observability.ObserveBooking("confirmed")
	log.Info().
		Str("ref", conf.Reference).
		Int64("hotel", conf.HotelID).
		Str("room", room.ID).
		Int("nights", conf.Price.Nights).
		Float64("total", conf.Price.Total).
		Msg("booking confirmed")
	return conf, nil
}
