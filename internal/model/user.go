package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username   string               `json:"username" bson:"username"`
	FullName   string               `json:"full_name" bson:"fullName"`
	Email      string               `json:"email" bson:"email"`
	Password   string               `json:"-" bson:"password"`
	Bio        string               `json:"bio" bson:"bio"`
	Link       string               `json:"link" bson:"link"`
	ProfileImg *Image               `json:"profile_img" bson:"profileImg,omitempty"`
	CoverImg   *Image               `json:"cover_img" bson:"coverImg,omitempty"`
	Followers  []primitive.ObjectID `json:"followers" bson:"followers"`
	Following  []primitive.ObjectID `json:"following" bson:"following"`
	LikedPosts []primitive.ObjectID `json:"liked_posts" bson:"likedPosts"`
	CreatedAt  time.Time            `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time            `json:"updated_at" bson:"updatedAt"`
}

// IsFollowing reports whether id is in the user's following set.
func (u *User) IsFollowing(id primitive.ObjectID) bool {
	return ContainsID(u.Following, id)
}

// HasLiked reports whether id is in the user's liked-posts set.
func (u *User) HasLiked(id primitive.ObjectID) bool {
	return ContainsID(u.LikedPosts, id)
}

func ContainsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
