package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Field  string `json:"field,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/destinations", h.listDestinations)
		r.Get("/hotels", h.searchHotels)
		r.Get("/hotels/{id}", h.getHotel)
		r.Get("/hotels/{id}/quote", h.quote)
		r.Group(func(r chi.Router) {
			if s.bookingRPS > 0 {
				r.Use(RateLimit(s.bookingRPS, int(s.bookingRPS)+1))
			}
			r.Post("/hotels/{id}/bookings", h.book)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses. Validation failures get
// validationStatus so callers can tell a malformed query (400) from a refused action (422).
func writeError(w http.ResponseWriter, err error, validationStatus int) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblemBody(w, problem{
			Type: "about:blank", Title: http.StatusText(validationStatus), Status: validationStatus,
			Detail: ve.Msg, Field: ve.Field,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes v as JSON with a weak ETag, or 304 when the client already has it.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); etag != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if etag != "" {
		w.Header().Set("ETag", etag)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

func hotelID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return 0, false
	}
	return id, true
}

type searchResponse struct {
	app.SearchResult
	Query stayQuery `json:"query"`
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := parseCriteria(q)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	stay, err := parseStay(q)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	res, err := h.Q.Search(r.Context(), c)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeCached(w, r, searchResponse{SearchResult: res, Query: stay})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := hotelID(w, r)
	if !ok {
		return
	}
	resp, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeCached(w, r, resp)
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	id, ok := hotelID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	in, err := parseDay("checkIn", q.Get("checkIn"))
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	out, err := parseDay("checkOut", q.Get("checkOut"))
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	resp, err := h.Q.Quote(r.Context(), id, q.Get("room"), in, out)
	if err != nil {
		writeError(w, err, http.StatusUnprocessableEntity)
		return
	}
	writeCached(w, r, resp)
}

type bookingBody struct {
	Room     string `json:"room"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	id, ok := hotelID(w, r)
	if !ok {
		return
	}
	var body bookingBody
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON booking request")
		return
	}
	in, err := parseDay("checkIn", body.CheckIn)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	out, err := parseDay("checkOut", body.CheckOut)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	conf, err := h.B.AttemptBooking(r.Context(), app.BookingRequest{
		HotelID: id, RoomID: body.Room, CheckIn: in, CheckOut: out, Guests: body.Guests,
	})
	if err != nil {
		writeError(w, err, http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusCreated, conf)
}

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Q.Destinations(r.Context())
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeCached(w, r, map[string]any{"items": ds})
}
