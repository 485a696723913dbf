package repository

import (
	"context"

	"github.com/MohamedHany17m8/x-from-scratch/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	Mongo *mongodb.MongoRepository
}

func New(ctx context.Context, db *mongo.Database) (*Repository, error) {
	mongoRepo, err := mongodb.New(ctx, db)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Mongo: mongoRepo,
	}, nil
}
