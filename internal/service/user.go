package service

import (
	"context"
	"strings"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/internal/imagestore"
	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const suggestedUsersLimit = 10

type userService struct {
	logger *zap.Logger
	repo   *repository.Repository
	images imagestore.Store
}

func newUserService(logger *zap.Logger, repo *repository.Repository, images imagestore.Store) User {
	return &userService{
		logger: logger,
		repo:   repo,
		images: images,
	}
}

func (s *userService) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.repo.Mongo.User.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in mongo: %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, username string) (*dto.GetUserDto, error) {
	user, err := s.repo.Mongo.User.FindByUsername(ctx, username)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in mongo: %s", username, err.Error())
		return nil, ErrInternal
	}
	return dto.GetUserDtoFromUser(*user), nil
}

func (s *userService) GetSuggested(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetUserDto, error) {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := append([]primitive.ObjectID{user.ID}, user.Following...)
	users, err := s.repo.Mongo.User.FindSuggested(ctx, exclude, suggestedUsersLimit)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find suggested users for user(%s): %s", userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	suggested := make([]*dto.GetUserDto, 0, len(users))
	for _, u := range users {
		suggested = append(suggested, dto.GetUserDtoFromUser(*u))
	}
	return suggested, nil
}

// FollowUnfollow toggles the follow relationship between userID and targetID.
// The two sides live in separate documents and are updated one after the
// other; each update is atomic but the pair is not.
func (s *userService) FollowUnfollow(ctx context.Context, userID primitive.ObjectID, targetID primitive.ObjectID) error {
	if userID == targetID {
		return ErrSelfFollow
	}

	target, err := s.repo.Mongo.User.FindByID(ctx, targetID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in mongo: %s", targetID.Hex(), err.Error())
		return ErrInternal
	}

	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsFollowing(target.ID) {
		if err := s.repo.Mongo.User.RemoveFollowing(ctx, user.ID, target.ID); err != nil {
			s.logger.Sugar().Errorf("failed to remove following(%s) from user(%s): %s", target.ID.Hex(), user.ID.Hex(), err.Error())
			return ErrInternal
		}
		if err := s.repo.Mongo.User.RemoveFollower(ctx, target.ID, user.ID); err != nil {
			s.logger.Sugar().Errorf("failed to remove follower(%s) from user(%s): %s", user.ID.Hex(), target.ID.Hex(), err.Error())
			return ErrInternal
		}
		return nil
	}

	if err := s.repo.Mongo.User.AddFollowing(ctx, user.ID, target.ID); err != nil {
		s.logger.Sugar().Errorf("failed to add following(%s) to user(%s): %s", target.ID.Hex(), user.ID.Hex(), err.Error())
		return ErrInternal
	}
	if err := s.repo.Mongo.User.AddFollower(ctx, target.ID, user.ID); err != nil {
		s.logger.Sugar().Errorf("failed to add follower(%s) to user(%s): %s", user.ID.Hex(), target.ID.Hex(), err.Error())
		return ErrInternal
	}

	notification := model.Notification{
		From: user.ID,
		To:   target.ID,
		Type: model.NotificationFollow,
	}
	if _, err := s.repo.Mongo.Notification.Create(ctx, notification); err != nil {
		s.logger.Sugar().Errorf("failed to create follow notification from user(%s) to user(%s): %s", user.ID.Hex(), target.ID.Hex(), err.Error())
		return ErrInternal
	}

	return nil
}

// Update applies partial profile updates: only non-empty fields replace prior
// values. A supplied image replaces the stored one, deleting the old object
// first.
func (s *userService) Update(ctx context.Context, userID primitive.ObjectID, input dto.UpdateUserDto) (*dto.GetUserDto, error) {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.CurrentPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
			return nil, ErrInvalidCredentials
		}
	}

	updates := make(map[string]interface{})

	if username := strings.TrimSpace(input.Username); username != "" && username != user.Username {
		if _, err := s.repo.Mongo.User.FindByUsername(ctx, username); err == nil {
			return nil, ErrUsernameTaken
		} else if err != mongo.ErrNoDocuments {
			s.logger.Sugar().Errorf("failed to check username(%s) in mongo: %s", username, err.Error())
			return nil, ErrInternal
		}
		updates["username"] = username
	}

	if email := strings.TrimSpace(input.Email); email != "" && email != user.Email {
		if !emailRegexp.MatchString(email) {
			return nil, ErrInvalidEmail
		}
		if _, err := s.repo.Mongo.User.FindByEmail(ctx, email); err == nil {
			return nil, ErrEmailTaken
		} else if err != mongo.ErrNoDocuments {
			s.logger.Sugar().Errorf("failed to check email(%s) in mongo: %s", email, err.Error())
			return nil, ErrInternal
		}
		updates["email"] = email
	}

	if input.FullName != "" {
		updates["fullName"] = input.FullName
	}
	if input.Bio != "" {
		updates["bio"] = input.Bio
	}
	if input.Link != "" {
		updates["link"] = input.Link
	}

	if input.NewPassword != "" {
		if len(input.NewPassword) < minPasswordLength {
			return nil, ErrPasswordTooShort
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
		if err != nil {
			s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
			return nil, ErrInternal
		}
		updates["password"] = string(passwordHash)
	}

	if input.ProfileImg != "" {
		img, err := s.replaceImage(ctx, user.ProfileImg, input.ProfileImg, imagestore.FolderProfileImages)
		if err != nil {
			return nil, err
		}
		updates["profileImg"] = img
	}

	if input.CoverImg != "" {
		img, err := s.replaceImage(ctx, user.CoverImg, input.CoverImg, imagestore.FolderCoverImages)
		if err != nil {
			return nil, err
		}
		updates["coverImg"] = img
	}

	if err := s.repo.Mongo.User.UpdateByID(ctx, user.ID, updates); err != nil {
		if conflict := conflictFromDuplicateKey(err); conflict != nil {
			return nil, conflict
		}

		s.logger.Sugar().Errorf("failed to update user(%s) in mongo: %s", user.ID.Hex(), err.Error())
		return nil, ErrInternal
	}

	updatedUser, err := s.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return dto.GetUserDtoFromUser(*updatedUser), nil
}

func (s *userService) replaceImage(ctx context.Context, old *model.Image, file string, folder string) (*model.Image, error) {
	if old != nil {
		if err := s.images.Delete(ctx, *old); err != nil {
			s.logger.Sugar().Errorf("failed to delete image(%s) from object store: %s", old.PublicID, err.Error())
			return nil, ErrInternal
		}
	}

	img, err := s.images.Upload(ctx, file, folder)
	if err != nil {
		s.logger.Sugar().Errorf("failed to upload image to object store folder(%s): %s", folder, err.Error())
		return nil, ErrInternal
	}
	return img, nil
}
