package dto

import (
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserDto is the account view returned to clients. It never carries the
// password hash.
type GetUserDto struct {
	ID         primitive.ObjectID   `json:"id"`
	Username   string               `json:"username"`
	FullName   string               `json:"full_name"`
	Email      string               `json:"email"`
	Bio        string               `json:"bio"`
	Link       string               `json:"link"`
	ProfileImg *model.Image         `json:"profile_img"`
	CoverImg   *model.Image         `json:"cover_img"`
	Followers  []primitive.ObjectID `json:"followers"`
	Following  []primitive.ObjectID `json:"following"`
	LikedPosts []primitive.ObjectID `json:"liked_posts"`
	CreatedAt  time.Time            `json:"created_at"`
}

func GetUserDtoFromUser(user model.User) *GetUserDto {
	return &GetUserDto{
		ID:         user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		Email:      user.Email,
		Bio:        user.Bio,
		Link:       user.Link,
		ProfileImg: user.ProfileImg,
		CoverImg:   user.CoverImg,
		Followers:  user.Followers,
		Following:  user.Following,
		LikedPosts: user.LikedPosts,
		CreatedAt:  user.CreatedAt,
	}
}

// AuthorDto is the short identity attached to posts, comments and
// notifications in place of a raw account id.
type AuthorDto struct {
	ID         primitive.ObjectID `json:"id"`
	Username   string             `json:"username"`
	FullName   string             `json:"full_name"`
	ProfileImg *model.Image       `json:"profile_img"`
}

func AuthorDtoFromUser(user model.User) AuthorDto {
	return AuthorDto{
		ID:         user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		ProfileImg: user.ProfileImg,
	}
}
