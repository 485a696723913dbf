package service

import (
	"context"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/internal/imagestore"
	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Auth interface {
	SignUp(ctx context.Context, input dto.SignUpDto) (*dto.GetUserDto, string, error)
	SignIn(ctx context.Context, input dto.SignInDto) (*dto.GetUserDto, string, error)
}

type User interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetProfile(ctx context.Context, username string) (*dto.GetUserDto, error)
	GetSuggested(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetUserDto, error)
	FollowUnfollow(ctx context.Context, userID primitive.ObjectID, targetID primitive.ObjectID) error
	Update(ctx context.Context, userID primitive.ObjectID, input dto.UpdateUserDto) (*dto.GetUserDto, error)
}

type Post interface {
	Create(ctx context.Context, authorID primitive.ObjectID, input dto.CreatePostDto) (*dto.GetPostDto, error)
	GetAll(ctx context.Context) ([]*dto.GetPostDto, error)
	GetByUsername(ctx context.Context, username string) ([]*dto.GetPostDto, error)
	GetFollowingFeed(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetPostDto, error)
	GetLiked(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetPostDto, error)
	LikeUnlike(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) (bool, error)
	Comment(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID, text string) (*dto.GetPostDto, error)
	Delete(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) error
}

type Notification interface {
	GetAll(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetNotificationDto, error)
	DeleteAll(ctx context.Context, userID primitive.ObjectID) error
}

type Service struct {
	Auth
	User
	Post
	Notification
}

func New(logger *zap.Logger, repo *repository.Repository, images imagestore.Store) *Service {
	return &Service{
		Auth:         newAuthService(logger, repo),
		User:         newUserService(logger, repo, images),
		Post:         newPostService(logger, repo, images),
		Notification: newNotificationService(logger, repo),
	}
}
