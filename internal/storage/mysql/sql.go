package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, image, stars, price, original_price, location, amenities, distance_km,
   description, images, rating, lat, lon)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name           = VALUES(name),
  image          = VALUES(image),
  stars          = VALUES(stars),
  price          = VALUES(price),
  original_price = VALUES(original_price),
  location       = VALUES(location),
  amenities      = VALUES(amenities),
  distance_km    = VALUES(distance_km),
  description    = VALUES(description),
  images         = VALUES(images),
  rating         = VALUES(rating),
  lat            = VALUES(lat),
  lon            = VALUES(lon),
  updated_at     = CURRENT_TIMESTAMP
`

// Rooms are replaced wholesale on every upsert; position keeps the feed order
// so the first room stays the default selection.
const deleteRoomsSQL = `DELETE FROM hotel_rooms WHERE hotel_id = ?`

const insertRoomsPrefix = "INSERT INTO hotel_rooms (hotel_id, room_key, name, price_per_night, position) VALUES "

// Reviews follow the feed too: cleared and re-inserted so dropped reviews disappear.
const deleteReviewsSQL = `DELETE FROM hotel_reviews WHERE hotel_id = ?`

// Note: `user` and `comment` are keywords in some MySQL modes; keep them quoted.
const insertReviewsPrefix = "INSERT INTO hotel_reviews (hotel_id, id, `user`, rating, `comment`, review_date) VALUES "

const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  `user`      = VALUES(`user`),\n" +
	"  rating      = VALUES(rating),\n" +
	"  `comment`   = VALUES(`comment`),\n" +
	"  review_date = VALUES(review_date)\n"

const deleteHotelSQL = `DELETE FROM hotels WHERE id = ?`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listingColumns = `id, name, image, stars, price, original_price, location, amenities, distance_km`

const listListingsSQL = `SELECT ` + listingColumns + ` FROM hotels ORDER BY id`

const getHotelSQL = `
SELECT ` + listingColumns + `,
  description, images, rating, lat, lon
FROM hotels
WHERE id = ?
`

const listRoomsSQL = `
SELECT room_key, name, price_per_night
FROM hotel_rooms
WHERE hotel_id = ?
ORDER BY position
`

const listReviewsSQL = "SELECT id, `user`, rating, `comment`, review_date FROM hotel_reviews WHERE hotel_id = ? ORDER BY review_date DESC, id DESC"

const listDestinationsSQL = `SELECT id, name, image FROM destinations ORDER BY id`
