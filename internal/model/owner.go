package model

// Owner is the managing party for one or more listings. Ownership is
// held as an ordered set of listing ids resolved through the listing
// store; owner records never embed listing data.
//
// Fields:
//  ID       – owner identifier.
//  Username – login name used by the owner portal.
//  Name     – display name.
//  Phone    – contact phone number.
//  Email    – contact email address.
//  Listings – ids of the listings this owner manages.
type Owner struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Listings []string `json:"pgListings"`
}
