package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dbTimeout      = 10 * time.Second
	connectTimeout = 30 * time.Second

	UserCollectionName         = "users"
	MeetingCollectionName      = "meetings"
	NotificationCollectionName = "notifications"

	activeSlotIndexName = "unique_active_slot"
)

// Store keeps every collection of the application in one Mongo database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db}
}

func ConnectToMongoDB(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Println("Connected to MongoDB!")
	return NewStore(client.Database(dbName)), nil
}

func (s *Store) CloseMongoDBConnection() {
	if err := s.client.Disconnect(context.Background()); err != nil {
		log.Printf("Failed to disconnect from MongoDB: %v\n", err)
	}
}

func (s *Store) GetCollection(collectionName string) *mongo.Collection {
	return s.db.Collection(collectionName)
}

// EnsureIndexes creates the indexes the application relies on, including the
// partial unique index that makes double booking impossible.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{"email", 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{"role", 1}, {"rating", -1}}},
	}
	if _, err := s.GetCollection(UserCollectionName).Indexes().CreateMany(ctx, userIndexes); err != nil {
		log.Printf("EnsureIndexes: users: %v\n", err)
		return err
	}

	meetingIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{"mentor", 1}, {"date", 1}, {"timeSlot", 1}},
			Options: options.Index().
				SetName(activeSlotIndexName).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"slotHeld": true}),
		},
		{Keys: bson.D{{"mentee", 1}, {"status", 1}}},
		{Keys: bson.D{{"status", 1}, {"date", 1}}},
	}
	if _, err := s.GetCollection(MeetingCollectionName).Indexes().CreateMany(ctx, meetingIndexes); err != nil {
		log.Printf("EnsureIndexes: meetings: %v\n", err)
		return err
	}

	notificationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{"recipient", 1}, {"createdAt", -1}}},
	}
	if _, err := s.GetCollection(NotificationCollectionName).Indexes().CreateMany(ctx, notificationIndexes); err != nil {
		log.Printf("EnsureIndexes: notifications: %v\n", err)
		return err
	}
	return nil
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, dbTimeout)
}
