package mongodb

import (
	"context"
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepo struct {
	coll *mongo.Collection
}

func newUserRepo(ctx context.Context, db *mongo.Database) (User, error) {
	coll := db.Collection("users")

	// Uniqueness of username and email is enforced by the indexes; the
	// service-level pre-checks only exist to return friendly errors.
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return nil, err
	}

	return &userRepo{coll: coll}, nil
}

func (r *userRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	user.Followers = []primitive.ObjectID{}
	user.Following = []primitive.ObjectID{}
	user.LikedPosts = []primitive.ObjectID{}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	users := []*model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) FindSuggested(ctx context.Context, exclude []primitive.ObjectID, limit int64) ([]*model.User, error) {
	cursor, err := r.coll.Find(
		ctx,
		bson.M{"_id": bson.M{"$nin": exclude}},
		options.Find().SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	users := []*model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	set := bson.M{"updatedAt": time.Now()}
	for field, value := range updates {
		set[field] = value
	}

	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

func (r *userRepo) AddFollower(ctx context.Context, userID primitive.ObjectID, followerID primitive.ObjectID) error {
	return r.addToSet(ctx, userID, "followers", followerID)
}

func (r *userRepo) RemoveFollower(ctx context.Context, userID primitive.ObjectID, followerID primitive.ObjectID) error {
	return r.pull(ctx, userID, "followers", followerID)
}

func (r *userRepo) AddFollowing(ctx context.Context, userID primitive.ObjectID, targetID primitive.ObjectID) error {
	return r.addToSet(ctx, userID, "following", targetID)
}

func (r *userRepo) RemoveFollowing(ctx context.Context, userID primitive.ObjectID, targetID primitive.ObjectID) error {
	return r.pull(ctx, userID, "following", targetID)
}

func (r *userRepo) AddLikedPost(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) error {
	return r.addToSet(ctx, userID, "likedPosts", postID)
}

func (r *userRepo) RemoveLikedPost(ctx context.Context, userID primitive.ObjectID, postID primitive.ObjectID) error {
	return r.pull(ctx, userID, "likedPosts", postID)
}

func (r *userRepo) addToSet(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{field: value}})
	return err
}

func (r *userRepo) pull(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$pull": bson.M{field: value}})
	return err
}
