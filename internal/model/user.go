package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account in the users collection.
//
// LastLogin and LastLogout are pointers so a missing timestamp stays
// null all the way through to the JSON response.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"       json:"id"`
	Name         string        `bson:"name"                json:"name"`
	Email        string        `bson:"email"               json:"email"`
	PasswordHash string        `bson:"password"            json:"-"`
	LastLogin    *time.Time    `bson:"lastLogin"           json:"lastLogin"`
	LastLogout   *time.Time    `bson:"lastLogout"          json:"lastLogout"`
	Bookmarks    []Bookmark    `bson:"bookmarks,omitempty" json:"bookmarks,omitempty"`
}

// Bookmark is a user-saved reference to a liquidity pool as served by the
// market-data API. ID is the identity used for add/remove; Type and
// Attributes carry the rest of the upstream object verbatim.
type Bookmark struct {
	ID         string `bson:"id"                   json:"id"`
	Type       string `bson:"type,omitempty"       json:"type,omitempty"`
	Attributes bson.M `bson:"attributes,omitempty" json:"attributes,omitempty"`
}
