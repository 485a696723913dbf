package service

import (
	"context"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// resolveAuthors loads the short identities for a set of account ids in one
// query. Duplicates are fine; ids of deleted accounts are simply absent from
// the result.
func resolveAuthors(ctx context.Context, logger *zap.Logger, repo *repository.Repository, ids []primitive.ObjectID) (map[primitive.ObjectID]dto.AuthorDto, error) {
	unique := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := repo.Mongo.User.FindByIDs(ctx, unique)
	if err != nil {
		logger.Sugar().Errorf("failed to find users by ids in mongo: %s", err.Error())
		return nil, ErrInternal
	}

	authors := make(map[primitive.ObjectID]dto.AuthorDto, len(users))
	for _, user := range users {
		authors[user.ID] = dto.AuthorDtoFromUser(*user)
	}
	return authors, nil
}
