package mongodb

import (
	"context"

	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type User interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error)
	FindSuggested(ctx context.Context, exclude []primitive.ObjectID, limit int64) ([]*model.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	AddFollower(ctx context.Context, userID primitive.ObjectID, followerID primitive.ObjectID) error
	RemoveFollower(ctx context.Context, userID primitive.ObjectID, followerID primitive.ObjectID) error
	AddFollowing(ctx context.Context, userID primitive.ObjectID, targetID primitive.ObjectID) error
	RemoveFollowing(ctx context.Context, userID primitive.ObjectID, targetID primitive.ObjectID) error
	AddLikedPost(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) error
	RemoveLikedPost(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) error
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Post, error)
	FindByUsers(ctx context.Context, userIDs []primitive.ObjectID) ([]*model.Post, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Post, error)
	AddLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) error
	AddComment(ctx context.Context, postID primitive.ObjectID, comment model.Comment) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type Notification interface {
	Create(ctx context.Context, notification model.Notification) (*model.Notification, error)
	FindByTo(ctx context.Context, to primitive.ObjectID) ([]*model.Notification, error)
	MarkReadByTo(ctx context.Context, to primitive.ObjectID) error
	DeleteByTo(ctx context.Context, to primitive.ObjectID) error
}

type MongoRepository struct {
	User
	Post
	Notification
}

func New(ctx context.Context, db *mongo.Database) (*MongoRepository, error) {
	users, err := newUserRepo(ctx, db)
	if err != nil {
		return nil, err
	}

	return &MongoRepository{
		User:         users,
		Post:         newPostRepo(db),
		Notification: newNotificationRepo(db),
	}, nil
}
