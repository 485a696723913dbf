package service

import (
	"context"
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/internal/imagestore"
	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
	images imagestore.Store
}

func newPostService(logger *zap.Logger, repo *repository.Repository, images imagestore.Store) Post {
	return &postService{
		logger: logger,
		repo:   repo,
		images: images,
	}
}

func (s *postService) Create(ctx context.Context, authorID primitive.ObjectID, input dto.CreatePostDto) (*dto.GetPostDto, error) {
	if input.Text == "" && input.Img == "" {
		return nil, ErrEmptyPost
	}

	post := model.Post{
		User: authorID,
		Text: input.Text,
	}

	if input.Img != "" {
		img, err := s.images.Upload(ctx, input.Img, imagestore.FolderPostImages)
		if err != nil {
			s.logger.Sugar().Errorf("failed to upload post image to object store: %s", err.Error())
			return nil, ErrInternal
		}
		post.Img = img
	}

	createdPost, err := s.repo.Mongo.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post in mongo: %s", err.Error())
		return nil, ErrInternal
	}

	return s.toView(ctx, createdPost)
}

func (s *postService) GetAll(ctx context.Context) ([]*dto.GetPostDto, error) {
	posts, err := s.repo.Mongo.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts in mongo: %s", err.Error())
		return nil, ErrInternal
	}
	return s.toViews(ctx, posts)
}

func (s *postService) GetByUsername(ctx context.Context, username string) ([]*dto.GetPostDto, error) {
	user, err := s.repo.Mongo.User.FindByUsername(ctx, username)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in mongo: %s", username, err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Mongo.Post.FindByUser(ctx, user.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts of user(%s) in mongo: %s", username, err.Error())
		return nil, ErrInternal
	}
	return s.toViews(ctx, posts)
}

func (s *postService) GetFollowingFeed(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetPostDto, error) {
	user, err := s.repo.Mongo.User.FindByID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in mongo: %s", userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Mongo.Post.FindByUsers(ctx, user.Following)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find following feed of user(%s) in mongo: %s", userID.Hex(), err.Error())
		return nil, ErrInternal
	}
	return s.toViews(ctx, posts)
}

func (s *postService) GetLiked(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetPostDto, error) {
	user, err := s.repo.Mongo.User.FindByID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in mongo: %s", userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Mongo.Post.FindByIDs(ctx, user.LikedPosts)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find liked posts of user(%s) in mongo: %s", userID.Hex(), err.Error())
		return nil, ErrInternal
	}
	return s.toViews(ctx, posts)
}

// LikeUnlike toggles userID's like on the post and returns true when the post
// is liked after the call. The post's liker set and the user's liked-posts set
// are separate documents; the pair of updates is not atomic.
func (s *postService) LikeUnlike(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) (bool, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return false, err
	}

	if post.IsLikedBy(userID) {
		if err := s.repo.Mongo.Post.RemoveLike(ctx, post.ID, userID); err != nil {
			s.logger.Sugar().Errorf("failed to remove like of user(%s) from post(%s): %s", userID.Hex(), post.ID.Hex(), err.Error())
			return false, ErrInternal
		}
		if err := s.repo.Mongo.User.RemoveLikedPost(ctx, userID, post.ID); err != nil {
			s.logger.Sugar().Errorf("failed to remove liked post(%s) from user(%s): %s", post.ID.Hex(), userID.Hex(), err.Error())
			return false, ErrInternal
		}
		return false, nil
	}

	if err := s.repo.Mongo.Post.AddLike(ctx, post.ID, userID); err != nil {
		s.logger.Sugar().Errorf("failed to add like of user(%s) to post(%s): %s", userID.Hex(), post.ID.Hex(), err.Error())
		return false, ErrInternal
	}
	if err := s.repo.Mongo.User.AddLikedPost(ctx, userID, post.ID); err != nil {
		s.logger.Sugar().Errorf("failed to add liked post(%s) to user(%s): %s", post.ID.Hex(), userID.Hex(), err.Error())
		return false, ErrInternal
	}

	notification := model.Notification{
		From: userID,
		To:   post.User,
		Type: model.NotificationLike,
	}
	if _, err := s.repo.Mongo.Notification.Create(ctx, notification); err != nil {
		s.logger.Sugar().Errorf("failed to create like notification from user(%s) to user(%s): %s", userID.Hex(), post.User.Hex(), err.Error())
		return false, ErrInternal
	}

	return true, nil
}

func (s *postService) Comment(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID, text string) (*dto.GetPostDto, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		Text:      text,
		User:      userID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Mongo.Post.AddComment(ctx, post.ID, comment); err != nil {
		s.logger.Sugar().Errorf("failed to add comment of user(%s) to post(%s): %s", userID.Hex(), post.ID.Hex(), err.Error())
		return nil, ErrInternal
	}

	updatedPost, err := s.findPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, updatedPost)
}

// Delete removes a post owned by userID. The data store is authoritative:
// a failing object-store cleanup is logged and the post is deleted anyway.
func (s *postService) Delete(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.User != userID {
		return ErrNotPostOwner
	}

	if post.Img != nil {
		if err := s.images.Delete(ctx, *post.Img); err != nil {
			s.logger.Sugar().Warnf("failed to delete image(%s) of post(%s) from object store: %s", post.Img.PublicID, post.ID.Hex(), err.Error())
		}
	}

	if err := s.repo.Mongo.Post.DeleteByID(ctx, post.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) from mongo: %s", post.ID.Hex(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) findPost(ctx context.Context, postID primitive.ObjectID) (*model.Post, error) {
	post, err := s.repo.Mongo.Post.FindByID(ctx, postID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s) in mongo: %s", postID.Hex(), err.Error())
		return nil, ErrInternal
	}
	return post, nil
}

func (s *postService) toView(ctx context.Context, post *model.Post) (*dto.GetPostDto, error) {
	views, err := s.toViews(ctx, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *postService) toViews(ctx context.Context, posts []*model.Post) ([]*dto.GetPostDto, error) {
	ids := make([]primitive.ObjectID, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.User)
		for _, comment := range post.Comments {
			ids = append(ids, comment.User)
		}
	}

	authors, err := resolveAuthors(ctx, s.logger, s.repo, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.GetPostDto, 0, len(posts))
	for _, post := range posts {
		views = append(views, dto.GetPostDtoFromPost(*post, authors))
	}
	return views, nil
}
