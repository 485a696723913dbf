package dto

import (
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetPostDto struct {
	ID        primitive.ObjectID   `json:"id"`
	User      AuthorDto            `json:"user"`
	Text      string               `json:"text"`
	Img       *model.Image         `json:"img"`
	Likes     []primitive.ObjectID `json:"likes"`
	Comments  []GetCommentDto      `json:"comments"`
	CreatedAt time.Time            `json:"created_at"`
}

type GetCommentDto struct {
	Text      string    `json:"text"`
	User      AuthorDto `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// GetPostDtoFromPost builds the display view of a post, resolving the author
// and every comment author through the given lookup. Authors missing from the
// lookup keep their bare id so a deleted account does not hide the post.
func GetPostDtoFromPost(post model.Post, authors map[primitive.ObjectID]AuthorDto) *GetPostDto {
	view := &GetPostDto{
		ID:        post.ID,
		User:      resolveAuthor(post.User, authors),
		Text:      post.Text,
		Img:       post.Img,
		Likes:     post.Likes,
		Comments:  make([]GetCommentDto, 0, len(post.Comments)),
		CreatedAt: post.CreatedAt,
	}
	for _, comment := range post.Comments {
		view.Comments = append(view.Comments, GetCommentDto{
			Text:      comment.Text,
			User:      resolveAuthor(comment.User, authors),
			CreatedAt: comment.CreatedAt,
		})
	}
	return view
}

func resolveAuthor(id primitive.ObjectID, authors map[primitive.ObjectID]AuthorDto) AuthorDto {
	if author, ok := authors[id]; ok {
		return author
	}
	return AuthorDto{ID: id}
}
