package database

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorConnect/model"
	"mentorConnect/utils"
)

// AppendReview pushes the review and recomputes the mentor rating in a single
// document update, so the rating never drifts from the review list.
func (s *Store) AppendReview(ctx context.Context, mentorId primitive.ObjectID, review model.Review) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	filter := bson.M{"_id": mentorId, "role": model.RoleMentor}
	var mentor model.User
	err := s.GetCollection(UserCollectionName).FindOneAndUpdate(ctx, filter, GetAppendReviewPipeline(review),
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mentor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.MentorNotFound
	}
	if err != nil {
		log.Printf("AppendReview: error adding review to mentor(%s): %v\n", mentorId.Hex(), err)
		return nil, err
	}
	return &mentor, nil
}
