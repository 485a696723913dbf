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

type notificationRepo struct {
	coll *mongo.Collection
}

func newNotificationRepo(db *mongo.Database) Notification {
	return &notificationRepo{
		coll: db.Collection("notifications"),
	}
}

func (r *notificationRepo) Create(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	notification.ID = primitive.NewObjectID()
	notification.Read = false
	notification.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepo) FindByTo(ctx context.Context, to primitive.ObjectID) ([]*model.Notification, error) {
	cursor, err := r.coll.Find(
		ctx,
		bson.M{"to": to},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	notifications := []*model.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepo) MarkReadByTo(ctx context.Context, to primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(
		ctx,
		bson.M{"to": to, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}

func (r *notificationRepo) DeleteByTo(ctx context.Context, to primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"to": to})
	return err
}
