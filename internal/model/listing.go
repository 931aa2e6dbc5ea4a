package model

// Gender is the closed set of gender preferences a PG accepts.
// Search filters additionally use GenderAny, which matches every
// listing and is never stored on a listing itself.
type Gender string

const (
	GenderAny    Gender = "Any"
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderCoed   Gender = "Co-ed"
)

// Valid reports whether g is a storable listing value. GenderAny is
// deliberately excluded; it only exists on the filter side.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderCoed:
		return true
	}
	return false
}

// RoomType is the closed set of room configurations.
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomTriple RoomType = "Triple"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomSingle, RoomDouble, RoomTriple:
		return true
	}
	return false
}

// Availability is the closed set of occupancy states.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityLimited   Availability = "Limited"
	AvailabilityFull      Availability = "Full"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityLimited, AvailabilityFull:
		return true
	}
	return false
}

// Listing represents one advertised PG unit. It is the data contract
// shared by the store, the search engine and the HTTP layer, so the
// JSON field names mirror the public record shape.
//
// Fields:
//  ID               – unique identifier within the store.
//  Name             – display name of the PG.
//  Images           – ordered image references.
//  MonthlyRent      – monthly rent, positive, currency-agnostic unit.
//  GenderPreference – Male, Female or Co-ed.
//  Location         – named area drawn from the fixed location list.
//  Area             – free-text sub-area.
//  PhoneNumber      – contact phone number.
//  GoogleMapsLink   – external map link.
//  Rating           – decimal rating in [0, 5].
//  Amenities        – open set of amenity tags.
//  RoomType         – Single, Double or Triple.
//  Description      – free-text description.
//  Verified         – whether the listing passed verification.
//  Availability     – Available, Limited or Full.
type Listing struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Images           []string     `json:"images"`
	MonthlyRent      int          `json:"monthlyRent"`
	GenderPreference Gender       `json:"genderPreference"`
	Location         string       `json:"location"`
	Area             string       `json:"area"`
	PhoneNumber      string       `json:"phoneNumber"`
	GoogleMapsLink   string       `json:"googleMapsLink"`
	Rating           float64      `json:"rating"`
	Amenities        []string     `json:"amenities"`
	RoomType         RoomType     `json:"roomType"`
	Description      string       `json:"description"`
	Verified         bool         `json:"verified"`
	Availability     Availability `json:"availability"`
}

// Clone returns a deep copy so callers can hand records across the
// store boundary without sharing slice backing arrays.
func (l Listing) Clone() Listing {
	out := l
	if l.Images != nil {
		out.Images = append([]string(nil), l.Images...)
	}
	if l.Amenities != nil {
		out.Amenities = append([]string(nil), l.Amenities...)
	}
	return out
}

// ListingPatch carries a partial update for a listing. Nil fields are
// left untouched by the merge; an empty patch is a valid no-op.
type ListingPatch struct {
	Name             *string       `json:"name"`
	Images           *[]string     `json:"images"`
	MonthlyRent      *int          `json:"monthlyRent"`
	GenderPreference *Gender       `json:"genderPreference"`
	Location         *string       `json:"location"`
	Area             *string       `json:"area"`
	PhoneNumber      *string       `json:"phoneNumber"`
	GoogleMapsLink   *string       `json:"googleMapsLink"`
	Rating           *float64      `json:"rating"`
	Amenities        *[]string     `json:"amenities"`
	RoomType         *RoomType     `json:"roomType"`
	Description      *string       `json:"description"`
	Verified         *bool         `json:"verified"`
	Availability     *Availability `json:"availability"`
}

// Apply merges the patch over l and returns the result. Unset fields
// keep their previous values.
func (p ListingPatch) Apply(l Listing) Listing {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Images != nil {
		l.Images = append([]string(nil), (*p.Images)...)
	}
	if p.MonthlyRent != nil {
		l.MonthlyRent = *p.MonthlyRent
	}
	if p.GenderPreference != nil {
		l.GenderPreference = *p.GenderPreference
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Area != nil {
		l.Area = *p.Area
	}
	if p.PhoneNumber != nil {
		l.PhoneNumber = *p.PhoneNumber
	}
	if p.GoogleMapsLink != nil {
		l.GoogleMapsLink = *p.GoogleMapsLink
	}
	if p.Rating != nil {
		l.Rating = *p.Rating
	}
	if p.Amenities != nil {
		l.Amenities = append([]string(nil), (*p.Amenities)...)
	}
	if p.RoomType != nil {
		l.RoomType = *p.RoomType
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Verified != nil {
		l.Verified = *p.Verified
	}
	if p.Availability != nil {
		l.Availability = *p.Availability
	}
	return l
}
