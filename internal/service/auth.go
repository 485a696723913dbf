package service

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"github.com/MohamedHany17m8/x-from-scratch/pkg/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 10
	minPasswordLength = 8
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newAuthService(logger *zap.Logger, repo *repository.Repository) Auth {
	return &authService{
		logger: logger,
		repo:   repo,
	}
}

func (s *authService) SignUp(ctx context.Context, input dto.SignUpDto) (*dto.GetUserDto, string, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if !emailRegexp.MatchString(input.Email) {
		return nil, "", ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	if _, err := s.repo.Mongo.User.FindByEmail(ctx, input.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if err != mongo.ErrNoDocuments {
		s.logger.Sugar().Errorf("failed to check email(%s) in mongo: %s", input.Email, err.Error())
		return nil, "", ErrInternal
	}

	if _, err := s.repo.Mongo.User.FindByUsername(ctx, input.Username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if err != mongo.ErrNoDocuments {
		s.logger.Sugar().Errorf("failed to check username(%s) in mongo: %s", input.Username, err.Error())
		return nil, "", ErrInternal
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
		return nil, "", ErrInternal
	}

	user := model.User{
		Username: input.Username,
		FullName: input.FullName,
		Email:    input.Email,
		Password: string(passwordHash),
	}
	createdUser, err := s.repo.Mongo.User.Create(ctx, user)
	if err != nil {
		if conflict := conflictFromDuplicateKey(err); conflict != nil {
			return nil, "", conflict
		}

		s.logger.Sugar().Errorf("failed to create user in mongo: %s", err.Error())
		return nil, "", ErrInternal
	}

	token, err := utils.GenerateSessionToken(createdUser.ID, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate session token: %s", err.Error())
		return nil, "", ErrInternal
	}

	return dto.GetUserDtoFromUser(*createdUser), token, nil
}

func (s *authService) SignIn(ctx context.Context, input dto.SignInDto) (*dto.GetUserDto, string, error) {
	user, err := s.repo.Mongo.User.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in mongo: %s", input.Username, err.Error())
		return nil, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(user.ID, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate session token: %s", err.Error())
		return nil, "", ErrInternal
	}

	return dto.GetUserDtoFromUser(*user), token, nil
}
