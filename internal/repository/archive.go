package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/homeland-scout/pg-finder/internal/model"
)

// Archive mirrors the listing store into MySQL so admin edits survive
// a restart. It is write-behind for the in-memory store: the store
// stays authoritative and archive failures are logged by callers, not
// surfaced to the user.
type Archive struct{ DB *sql.DB }

func NewArchive(db *sql.DB) *Archive { return &Archive{DB: db} }

// EnsureSchema creates the listings table when it does not exist.
// Images and amenities are stored as JSON arrays in text columns.
func (a *Archive) EnsureSchema(ctx context.Context) error {
	_, err := a.DB.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS listings (
		id VARCHAR(32) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		images TEXT NOT NULL,
		monthly_rent INT NOT NULL,
		gender_preference VARCHAR(16) NOT NULL,
		location VARCHAR(64) NOT NULL,
		area VARCHAR(255) NOT NULL,
		phone_number VARCHAR(32) NOT NULL,
		google_maps_link VARCHAR(512) NOT NULL,
		rating DOUBLE NOT NULL,
		amenities TEXT NOT NULL,
		room_type VARCHAR(16) NOT NULL,
		description TEXT NOT NULL,
		verified TINYINT(1) NOT NULL,
		availability VARCHAR(16) NOT NULL,
		position INT NOT NULL
	)`)
	return err
}

// Load returns the archived listings ordered by their original
// insertion position.
func (a *Archive) Load(ctx context.Context) ([]model.Listing, error) {
	rows, err := a.DB.QueryContext(ctx,
		`SELECT id, name, images, monthly_rent, gender_preference, location, area,
		        phone_number, google_maps_link, rating, amenities, room_type,
		        description, verified, availability
		 FROM listings ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Listing
	for rows.Next() {
		var (
			l                 model.Listing
			images, amenities string
		)
		if err := rows.Scan(&l.ID, &l.Name, &images, &l.MonthlyRent,
			&l.GenderPreference, &l.Location, &l.Area, &l.PhoneNumber,
			&l.GoogleMapsLink, &l.Rating, &amenities, &l.RoomType,
			&l.Description, &l.Verified, &l.Availability); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(images), &l.Images); err != nil {
			return nil, fmt.Errorf("listing %s images: %w", l.ID, err)
		}
		if err := json.Unmarshal([]byte(amenities), &l.Amenities); err != nil {
			return nil, fmt.Errorf("listing %s amenities: %w", l.ID, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Save upserts one listing at the given insertion position.
func (a *Archive) Save(ctx context.Context, l model.Listing, position int) error {
	images, err := json.Marshal(l.Images)
	if err != nil {
		return err
	}
	amenities, err := json.Marshal(l.Amenities)
	if err != nil {
		return err
	}
	_, err = a.DB.ExecContext(ctx,
		`INSERT INTO listings (id, name, images, monthly_rent, gender_preference,
		        location, area, phone_number, google_maps_link, rating, amenities,
		        room_type, description, verified, availability, position)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		        name=VALUES(name), images=VALUES(images),
		        monthly_rent=VALUES(monthly_rent),
		        gender_preference=VALUES(gender_preference),
		        location=VALUES(location), area=VALUES(area),
		        phone_number=VALUES(phone_number),
		        google_maps_link=VALUES(google_maps_link), rating=VALUES(rating),
		        amenities=VALUES(amenities), room_type=VALUES(room_type),
		        description=VALUES(description), verified=VALUES(verified),
		        availability=VALUES(availability)`,
		l.ID, l.Name, string(images), l.MonthlyRent, string(l.GenderPreference),
		l.Location, l.Area, l.PhoneNumber, l.GoogleMapsLink, l.Rating,
		string(amenities), string(l.RoomType), l.Description, l.Verified,
		string(l.Availability), position)
	return err
}

// Delete removes one archived listing. Deleting an id that is not
// archived is harmless.
func (a *Archive) Delete(ctx context.Context, id string) error {
	_, err := a.DB.ExecContext(ctx, "DELETE FROM listings WHERE id=?", id)
	return err
}
