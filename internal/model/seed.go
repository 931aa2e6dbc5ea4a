package model

import "time"

// Locations is the fixed set of named areas a listing can be filed
// under. The admin form only offers these values.
var Locations = []string{
	"Koramangala",
	"BTM Layout",
	"Indiranagar",
	"HSR Layout",
	"Whitefield",
}

// ValidLocation reports whether loc is one of the named areas.
func ValidLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// SeedListings returns the demo catalogue the service boots with when
// no archive is configured.
func SeedListings() []Listing {
	return []Listing{
		{
			ID:               "1",
			Name:             "Green Valley PG",
			Images:           []string{"/assets/pg-room-1.jpg"},
			MonthlyRent:      8000,
			GenderPreference: GenderMale,
			Location:         "Koramangala",
			Area:             "Bangalore",
			PhoneNumber:      "+91 9876543210",
			GoogleMapsLink:   "https://maps.google.com",
			Rating:           4.5,
			Amenities:        []string{"WiFi", "AC", "Laundry", "Meals"},
			RoomType:         RoomSingle,
			Description:      "Comfortable PG with all amenities",
			Verified:         true,
			Availability:     AvailabilityAvailable,
		},
		{
			ID:               "2",
			Name:             "Sunrise Residency",
			Images:           []string{"/assets/pg-room-2.jpg"},
			MonthlyRent:      7000,
			GenderPreference: GenderMale,
			Location:         "BTM Layout",
			Area:             "Bangalore",
			PhoneNumber:      "+91 9876543210",
			GoogleMapsLink:   "https://maps.google.com",
			Rating:           4.2,
			Amenities:        []string{"WiFi", "Laundry", "Meals"},
			RoomType:         RoomDouble,
			Description:      "Budget-friendly PG near metro",
			Verified:         true,
			Availability:     AvailabilityLimited,
		},
		{
			ID:               "3",
			Name:             "Rose Garden PG",
			Images:           []string{"/assets/pg-female-room.jpg"},
			MonthlyRent:      9000,
			GenderPreference: GenderFemale,
			Location:         "Indiranagar",
			Area:             "Bangalore",
			PhoneNumber:      "+91 9876543211",
			GoogleMapsLink:   "https://maps.google.com",
			Rating:           4.7,
			Amenities:        []string{"WiFi", "AC", "Laundry", "Meals", "Security"},
			RoomType:         RoomSingle,
			Description:      "Premium PG for working women",
			Verified:         true,
			Availability:     AvailabilityAvailable,
		},
		{
			ID:               "4",
			Name:             "Comfort Zone",
			Images:           []string{"/assets/pg-common-area.jpg"},
			MonthlyRent:      6500,
			GenderPreference: GenderFemale,
			Location:         "HSR Layout",
			Area:             "Bangalore",
			PhoneNumber:      "+91 9876543211",
			GoogleMapsLink:   "https://maps.google.com",
			Rating:           4.0,
			Amenities:        []string{"WiFi", "Laundry", "Meals"},
			RoomType:         RoomTriple,
			Description:      "Affordable option for students",
			Verified:         true,
			Availability:     AvailabilityAvailable,
		},
		{
			ID:               "5",
			Name:             "Elite Stays",
			Images:           []string{"/assets/pg-room-1.jpg"},
			MonthlyRent:      12000,
			GenderPreference: GenderCoed,
			Location:         "Whitefield",
			Area:             "Bangalore",
			PhoneNumber:      "+91 9876543212",
			GoogleMapsLink:   "https://maps.google.com",
			Rating:           4.8,
			Amenities:        []string{"WiFi", "AC", "Laundry", "Meals", "Gym", "Pool"},
			RoomType:         RoomSingle,
			Description:      "Luxury PG with premium amenities",
			Verified:         true,
			Availability:     AvailabilityLimited,
		},
	}
}

// SeedOwners returns the demo owner directory. Each owner references
// listings from SeedListings by id.
func SeedOwners() []Owner {
	return []Owner{
		{
			ID:       "owner1",
			Username: "owner1",
			Name:     "Rajesh Kumar",
			Phone:    "+91 9876543210",
			Email:    "rajesh@pgowner.com",
			Listings: []string{"1", "2"},
		},
		{
			ID:       "owner2",
			Username: "owner2",
			Name:     "Priya Sharma",
			Phone:    "+91 9876543211",
			Email:    "priya@pgowner.com",
			Listings: []string{"3", "4"},
		},
		{
			ID:       "owner3",
			Username: "owner3",
			Name:     "Amit Singh",
			Phone:    "+91 9876543212",
			Email:    "amit@pgowner.com",
			Listings: []string{"5"},
		},
	}
}

// SeedInteractions returns the demo interest history, in insertion
// order.
func SeedInteractions() []Interaction {
	ts := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []Interaction{
		{ID: "1", UserName: "Ankit Verma", UserPhone: "+91 8765432109", UserEmail: "ankit@gmail.com", ListingID: "1", LikedAt: ts("2024-01-15T10:30:00Z"), Message: "Interested in single room"},
		{ID: "2", UserName: "Sneha Patel", UserPhone: "+91 8765432108", UserEmail: "sneha@gmail.com", ListingID: "1", LikedAt: ts("2024-01-16T14:20:00Z")},
		{ID: "3", UserName: "Rohit Gupta", UserPhone: "+91 8765432107", UserEmail: "rohit@gmail.com", ListingID: "2", LikedAt: ts("2024-01-17T09:15:00Z"), Message: "Want to visit this weekend"},
		{ID: "4", UserName: "Kavya Reddy", UserPhone: "+91 8765432106", UserEmail: "kavya@gmail.com", ListingID: "3", LikedAt: ts("2024-01-18T16:45:00Z")},
		{ID: "5", UserName: "Arjun Nair", UserPhone: "+91 8765432105", UserEmail: "arjun@gmail.com", ListingID: "4", LikedAt: ts("2024-01-19T11:30:00Z"), Message: "Looking for long-term stay"},
		{ID: "6", UserName: "Divya Joshi", UserPhone: "+91 8765432104", UserEmail: "divya@gmail.com", ListingID: "5", LikedAt: ts("2024-01-20T13:20:00Z")},
	}
}
