package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"stayfinder/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.HotelDetail) (err error) {
	amen, err := valJSON(nonNil(h.Amenities))
	if err != nil {
		return fmt.Errorf("marshal amenities: %w", err)
	}
	imgs, err := valJSON(nonNil(h.Images))
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}
	var lat, lon any
	if h.Coords != nil {
		lat, lon = h.Coords.Lat, h.Coords.Lon
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Parent row first to satisfy FKs for rooms/reviews.
	if _, err = tx.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		h.Name,
		valStr(h.Image),
		h.Stars,
		h.Price,
		valF64(h.OriginalPrice),
		h.Location,
		amen,
		valF64(h.DistanceKm),
		valStr(h.Description),
		imgs,
		valF64(h.Rating),
		lat,
		lon,
	); err != nil {
		return fmt.Errorf("upsert hotel %d: %w", h.ID, err)
	}

	if _, err = tx.ExecContext(ctx, deleteRoomsSQL, h.ID); err != nil {
		return fmt.Errorf("clear rooms %d: %w", h.ID, err)
	}
	if len(h.Rooms) > 0 {
		values := make([]string, 0, len(h.Rooms))
		args := make([]any, 0, len(h.Rooms)*5)
		for i, rm := range h.Rooms {
			values = append(values, "(?,?,?,?,?)")
			args = append(args, h.ID, rm.ID, rm.Name, rm.PricePerNight, i)
		}
		if _, err = tx.ExecContext(ctx, insertRoomsPrefix+strings.Join(values, ","), args...); err != nil {
			return fmt.Errorf("insert rooms %d: %w", h.ID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, deleteReviewsSQL, h.ID); err != nil {
		return fmt.Errorf("clear reviews %d: %w", h.ID, err)
	}
	if len(h.Reviews) > 0 {
		values := make([]string, 0, len(h.Reviews))
		args := make([]any, 0, len(h.Reviews)*6)
		for _, rv := range h.Reviews {
			values = append(values, "(?,?,?,?,?,?)")
			args = append(args, h.ID, rv.ID, rv.User, rv.Rating, rv.Comment, valStr(rv.Date))
		}
		sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
		if _, err = tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("upsert reviews %d: %w", h.ID, err)
		}
	}

	return tx.Commit()
}

// DeleteHotel removes a hotel; rooms and reviews go with it via ON DELETE CASCADE.
func (r *Repo) DeleteHotel(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteHotelSQL, id)
	return err
}

type scanner interface{ Scan(dest ...any) error }

func scanListing(s scanner, extra ...any) (domain.Listing, error) {
	var l domain.Listing
	var image sql.NullString
	var orig, dist sql.NullFloat64
	var amenitiesJSON []byte
	dest := append([]any{&l.ID, &l.Name, &image, &l.Stars, &l.Price, &orig, &l.Location, &amenitiesJSON, &dist}, extra...)
	if err := s.Scan(dest...); err != nil {
		return domain.Listing{}, err
	}
	l.Image = image.String
	if orig.Valid {
		f := orig.Float64
		l.OriginalPrice = &f
	}
	if dist.Valid {
		f := dist.Float64
		l.DistanceKm = &f
	}
	if len(amenitiesJSON) > 0 {
		if err := json.Unmarshal(amenitiesJSON, &l.Amenities); err != nil {
			return domain.Listing{}, fmt.Errorf("decode amenities %d: %w", l.ID, err)
		}
	}
	return l, nil
}

func (r *Repo) ListListings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, listListingsSQL)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.HotelDetail, error) {
	var desc sql.NullString
	var imagesJSON []byte
	var rating, lat, lon sql.NullFloat64

	l, err := scanListing(r.db.QueryRowContext(ctx, getHotelSQL, id), &desc, &imagesJSON, &rating, &lat, &lon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.HotelDetail{}, domain.ErrNotFound
		}
		return domain.HotelDetail{}, err
	}

	h := domain.HotelDetail{Listing: l, Description: desc.String}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &h.Images); err != nil {
			return domain.HotelDetail{}, fmt.Errorf("decode images %d: %w", id, err)
		}
	}
	if rating.Valid {
		f := rating.Float64
		h.Rating = &f
	}
	if lat.Valid && lon.Valid {
		h.Coords = &domain.Coords{Lat: lat.Float64, Lon: lon.Float64}
	}

	if h.Rooms, err = r.listRooms(ctx, id); err != nil {
		return domain.HotelDetail{}, err
	}
	if h.Reviews, err = r.listReviews(ctx, id); err != nil {
		return domain.HotelDetail{}, err
	}
	return h, nil
}

func (r *Repo) listRooms(ctx context.Context, id int64) ([]domain.RoomOption, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoomOption
	for rows.Next() {
		var rm domain.RoomOption
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.PricePerNight); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) listReviews(ctx context.Context, id int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var date sql.NullString
		if err := rows.Scan(&rv.ID, &rv.User, &rv.Rating, &rv.Comment, &date); err != nil {
			return nil, err
		}
		rv.Date = date.String
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		var image sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &image); err != nil {
			return nil, err
		}
		d.Image = image.String
		out = append(out, d)
	}
	return out, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
