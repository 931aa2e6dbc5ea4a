package model

import "time"

// Interaction records one end user's expression of interest in a
// listing. The listing is referenced by id only; dependent lookups
// must resolve it through the listing store.
//
// Fields:
//  ID        – interaction identifier.
//  UserName  – display name of the interested user.
//  UserPhone – contact phone of the interested user.
//  UserEmail – contact email of the interested user.
//  ListingID – id of the listing the interest refers to.
//  LikedAt   – when the interest was recorded, UTC.
//  Message   – optional free-text message.
type Interaction struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	UserPhone string    `json:"userPhone"`
	UserEmail string    `json:"userEmail"`
	ListingID string    `json:"pgId"`
	LikedAt   time.Time `json:"likedAt"`
	Message   string    `json:"message,omitempty"`
}
