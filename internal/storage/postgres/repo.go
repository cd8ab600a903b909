// Package postgres is the Postgres-backed catalog store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"stayfinder/internal/domain"
)

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, image, stars, price, original_price, location, amenities, distance_km,
   description, images, rating, lat, lon)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (id) DO UPDATE SET
  name           = EXCLUDED.name,
  image          = EXCLUDED.image,
  stars          = EXCLUDED.stars,
  price          = EXCLUDED.price,
  original_price = EXCLUDED.original_price,
  location       = EXCLUDED.location,
  amenities      = EXCLUDED.amenities,
  distance_km    = EXCLUDED.distance_km,
  description    = EXCLUDED.description,
  images         = EXCLUDED.images,
  rating         = EXCLUDED.rating,
  lat            = EXCLUDED.lat,
  lon            = EXCLUDED.lon,
  updated_at     = NOW()
`

const upsertReviewSQL = `
INSERT INTO hotel_reviews (hotel_id, id, author, rating, comment, review_date)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (hotel_id, id) DO UPDATE SET
  author      = EXCLUDED.author,
  rating      = EXCLUDED.rating,
  comment     = EXCLUDED.comment,
  review_date = EXCLUDED.review_date
`

const listingColumns = `id, name, COALESCE(image, ''), stars, price, original_price, location, amenities, distance_km`

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func nullStr(s string) sql.NullString { return sql.NullString{String: s, Valid: s != ""} }

func nullF64(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.HotelDetail) (err error) {
	var lat, lon sql.NullFloat64
	if h.Coords != nil {
		lat = sql.NullFloat64{Float64: h.Coords.Lat, Valid: true}
		lon = sql.NullFloat64{Float64: h.Coords.Lon, Valid: true}
	}
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := h.Images
	if images == nil {
		images = []string{}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, upsertHotelSQL,
		h.ID, h.Name, nullStr(h.Image), h.Stars, h.Price, nullF64(h.OriginalPrice),
		h.Location, pq.Array(amenities), nullF64(h.DistanceKm),
		nullStr(h.Description), pq.Array(images), nullF64(h.Rating), lat, lon,
	); err != nil {
		return fmt.Errorf("upsert hotel %d: %w", h.ID, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM hotel_rooms WHERE hotel_id = $1`, h.ID); err != nil {
		return fmt.Errorf("clear rooms %d: %w", h.ID, err)
	}
	for i, rm := range h.Rooms {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO hotel_rooms (hotel_id, room_key, name, price_per_night, position) VALUES ($1, $2, $3, $4, $5)`,
			h.ID, rm.ID, rm.Name, rm.PricePerNight, i,
		); err != nil {
			return fmt.Errorf("insert room %s for %d: %w", rm.ID, h.ID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM hotel_reviews WHERE hotel_id = $1`, h.ID); err != nil {
		return fmt.Errorf("clear reviews %d: %w", h.ID, err)
	}
	for _, rv := range h.Reviews {
		if _, err = tx.ExecContext(ctx, upsertReviewSQL,
			h.ID, rv.ID, rv.User, rv.Rating, rv.Comment, nullStr(rv.Date),
		); err != nil {
			return fmt.Errorf("upsert review %d for %d: %w", rv.ID, h.ID, err)
		}
	}

	return tx.Commit()
}

func (r *Repo) DeleteHotel(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	return err
}

type scanner interface{ Scan(dest ...any) error }

func scanListing(s scanner, extra ...any) (domain.Listing, error) {
	var l domain.Listing
	var orig, dist sql.NullFloat64
	dest := append([]any{
		&l.ID, &l.Name, &l.Image, &l.Stars, &l.Price, &orig, &l.Location,
		pq.Array(&l.Amenities), &dist,
	}, extra...)
	if err := s.Scan(dest...); err != nil {
		return domain.Listing{}, err
	}
	if orig.Valid {
		f := orig.Float64
		l.OriginalPrice = &f
	}
	if dist.Valid {
		f := dist.Float64
		l.DistanceKm = &f
	}
	return l, nil
}

func (r *Repo) ListListings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+listingColumns+` FROM hotels ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.HotelDetail, error) {
	var desc sql.NullString
	var images []string
	var rating, lat, lon sql.NullFloat64

	row := r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+`, description, images, rating, lat, lon FROM hotels WHERE id = $1`, id)
	l, err := scanListing(row, &desc, pq.Array(&images), &rating, &lat, &lon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.HotelDetail{}, domain.ErrNotFound
		}
		return domain.HotelDetail{}, err
	}

	h := domain.HotelDetail{Listing: l, Description: desc.String, Images: images}
	if rating.Valid {
		f := rating.Float64
		h.Rating = &f
	}
	if lat.Valid && lon.Valid {
		h.Coords = &domain.Coords{Lat: lat.Float64, Lon: lon.Float64}
	}

	rooms, err := r.db.QueryContext(ctx,
		`SELECT room_key, name, price_per_night FROM hotel_rooms WHERE hotel_id = $1 ORDER BY position`, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	defer rooms.Close()
	for rooms.Next() {
		var rm domain.RoomOption
		if err := rooms.Scan(&rm.ID, &rm.Name, &rm.PricePerNight); err != nil {
			return domain.HotelDetail{}, err
		}
		h.Rooms = append(h.Rooms, rm)
	}
	if err := rooms.Err(); err != nil {
		return domain.HotelDetail{}, err
	}

	revs, err := r.db.QueryContext(ctx,
		`SELECT id, author, rating, comment, COALESCE(review_date, '') FROM hotel_reviews
		 WHERE hotel_id = $1 ORDER BY review_date DESC, id DESC`, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	defer revs.Close()
	for revs.Next() {
		var rv domain.Review
		if err := revs.Scan(&rv.ID, &rv.User, &rv.Rating, &rv.Comment, &rv.Date); err != nil {
			return domain.HotelDetail{}, err
		}
		h.Reviews = append(h.Reviews, rv)
	}
	return h, revs.Err()
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, COALESCE(image, '') FROM destinations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Image); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
