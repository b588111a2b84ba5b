package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorConnect/model"
	"mentorConnect/utils"
)

func (s *Store) CreateNotification(ctx context.Context, notification *model.Notification) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	doc, err := s.GetCollection(NotificationCollectionName).InsertOne(ctx, notification)
	if err != nil {
		log.Printf("CreateNotification: error creating notification for user(%s): %v\n", notification.Recipient.Hex(), err)
		return err
	}
	notification.Id = doc.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) GetUserNotifications(ctx context.Context, userId primitive.ObjectID) ([]model.Notification, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{"createdAt", -1}})
	cursor, err := s.GetCollection(NotificationCollectionName).Find(ctx, bson.M{"recipient": userId}, opts)
	if err != nil {
		log.Printf("GetUserNotifications: user(%s): %v\n", userId.Hex(), err)
		return nil, err
	}
	defer cursor.Close(ctx)
	notifications := []model.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		log.Printf("GetUserNotifications: failed to decode: %v\n", err)
		return nil, err
	}
	return notifications, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, id, userId primitive.ObjectID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	filter := bson.M{"_id": id, "recipient": userId}
	result, err := s.GetCollection(NotificationCollectionName).UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		log.Printf("MarkNotificationRead: notification(%s): %v\n", id.Hex(), err)
		return err
	}
	if result.MatchedCount == 0 {
		return utils.NotificationNotFound
	}
	return nil
}
