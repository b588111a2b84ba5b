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

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	doc, err := s.GetCollection(UserCollectionName).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return utils.EmailAlreadyRegistered
	}
	if err != nil {
		log.Printf("CreateUser: error inserting user(%s): %v\n", user.Email, err)
		return err
	}
	user.Id = doc.InsertedID.(primitive.ObjectID)
	log.Printf("User(email: %s, insertedID: %s) inserted successfully\n", user.Email, user.Id.Hex())
	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.findUser(ctx, bson.M{"_id": id})
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	var user model.User
	err := s.GetCollection(UserCollectionName).FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.UserNotFound
	}
	if err != nil {
		log.Printf("findUser: failed to find user(%v): %v\n", filter, err)
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetMentors(ctx context.Context, mentorFilter model.MentorFilter) ([]model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	filter := buildMentorFilter(mentorFilter)
	opts := options.Find().SetProjection(bson.M{"password": 0})
	if mentorFilter.ByRating {
		opts.SetSort(bson.D{{"rating", -1}, {"_id", 1}})
	} else {
		opts.SetSort(bson.D{{"_id", 1}})
	}
	if mentorFilter.Offset > 0 {
		opts.SetSkip(mentorFilter.Offset)
	}
	if mentorFilter.Limit > 0 {
		opts.SetLimit(mentorFilter.Limit)
	}
	cursor, err := s.GetCollection(UserCollectionName).Find(ctx, filter, opts)
	if err != nil {
		log.Printf("GetMentors: failed to find documents: %v\n", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		log.Printf("GetMentors: failed to decode documents: %v\n", err)
		return nil, err
	}
	return users, nil
}

func buildMentorFilter(mentorFilter model.MentorFilter) bson.M {
	filter := bson.M{"role": model.RoleMentor}
	if len(mentorFilter.Skills) > 0 {
		filter["skills.name"] = bson.M{"$all": mentorFilter.Skills}
	}
	if len(mentorFilter.Fields) > 0 {
		filter["mentorDetails.fields"] = bson.M{"$all": mentorFilter.Fields}
	}
	if mentorFilter.MinExperience > 0 {
		filter["mentorDetails.yearsOfExperience"] = bson.M{"$gte": mentorFilter.MinExperience}
	}
	return filter
}

func (s *Store) UpdateMentorProfile(ctx context.Context, id primitive.ObjectID, profile model.MentorProfile) (*model.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	set := bson.M{
		"role":          model.RoleMentor,
		"mentorDetails": profile.Details,
	}
	if profile.About != "" {
		set["about"] = profile.About
	}
	if profile.Skills != nil {
		set["skills"] = profile.Skills
	}
	if profile.AvailableTimeSlots != nil {
		set["availableTimeSlots"] = profile.AvailableTimeSlots
	}
	var user model.User
	err := s.GetCollection(UserCollectionName).FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.UserNotFound
	}
	if err != nil {
		log.Printf("UpdateMentorProfile: failed to update user(%s): %v\n", id.Hex(), err)
		return nil, err
	}
	log.Printf("User(id: %s) is now a mentor\n", id.Hex())
	return &user, nil
}
