package repository

import (
	"context"
	"errors"
	"log"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Callers pass the recipient id on every mutation; a notification owned by
// someone else is reported as not found, never as forbidden.
type NotificationRepo interface {
	Create(ctx context.Context, notification *types.Notification) (string, error)
	ListByRecipient(ctx context.Context, recipientID string, limit int64) ([]*types.Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID, id string) (*types.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, recipientID, id string) error
}

type notificationRepo struct {
	collection *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	collection := db.Collection("notifications")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "recipient", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "recipient", Value: 1},
				{Key: "read", Value: 1},
			},
		},
	}
	if _, err := collection.Indexes().CreateMany(context.Background(), indexes); err != nil {
		log.Printf("Error creating notification indexes: %v", err)
	}

	return &notificationRepo{
		collection: collection,
	}
}

func (r *notificationRepo) Create(ctx context.Context, notification *types.Notification) (string, error) {
	res, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	notification.ID = oid.Hex()
	return notification.ID, nil
}

func (r *notificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit int64) ([]*types.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"recipient": recipientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*types.Notification
	for cursor.Next(ctx) {
		var notification types.Notification
		if err := cursor.Decode(&notification); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}
	return notifications, nil
}

func (r *notificationRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"recipient": recipientID, "read": false})
}

func (r *notificationRepo) MarkRead(ctx context.Context, recipientID, id string) (*types.Notification, error) {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrNotificationNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	notification := &types.Notification{}
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objId, "recipient": recipientID},
		bson.M{"$set": bson.M{"read": true}},
		opts,
	).Decode(notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"recipient": recipientID, "read": false},
		bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *notificationRepo) Delete(ctx context.Context, recipientID, id string) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrNotificationNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId, "recipient": recipientID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrNotificationNotFound
	}
	return nil
}
