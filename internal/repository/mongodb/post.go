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

type postRepo struct {
	coll *mongo.Collection
}

func newPostRepo(db *mongo.Database) Post {
	return &postRepo{
		coll: db.Collection("posts"),
	}
}

// newestFirst sorts feeds the way clients render them.
var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.ID = primitive.NewObjectID()
	post.Likes = []primitive.ObjectID{}
	post.Comments = []model.Comment{}
	post.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *postRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Post, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *postRepo) FindByUsers(ctx context.Context, userIDs []primitive.ObjectID) ([]*model.Post, error) {
	if len(userIDs) == 0 {
		return []*model.Post{}, nil
	}
	return r.find(ctx, bson.M{"user": bson.M{"$in": userIDs}})
}

func (r *postRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *postRepo) AddLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
	return err
}

func (r *postRepo) RemoveLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
	return err
}

func (r *postRepo) AddComment(ctx context.Context, postID primitive.ObjectID, comment model.Comment) error {
	_, err := r.coll.UpdateByID(ctx, postID, bson.M{"$push": bson.M{"comments": comment}})
	return err
}

func (r *postRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *postRepo) find(ctx context.Context, filter bson.M) ([]*model.Post, error) {
	cursor, err := r.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}

	posts := []*model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
