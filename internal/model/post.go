package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Text      string               `json:"text" bson:"text"`
	Img       *Image               `json:"img" bson:"img,omitempty"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []Comment            `json:"comments" bson:"comments"`
	CreatedAt time.Time            `json:"created_at" bson:"createdAt"`
}

// Comment lives embedded inside a post document and is not independently
// addressable.
type Comment struct {
	Text      string             `json:"text" bson:"text"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
}

// IsLikedBy reports whether id is in the post's liker set.
func (p *Post) IsLikedBy(id primitive.ObjectID) bool {
	return ContainsID(p.Likes, id)
}
