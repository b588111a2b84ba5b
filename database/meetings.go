package database

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorConnect/model"
	"mentorConnect/utils"
)

// CreateMeeting inserts the meeting. The partial unique index on
// (mentor, date, timeSlot) rejects a second active meeting for the same slot.
func (s *Store) CreateMeeting(ctx context.Context, meeting *model.Meeting) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	meeting.SlotHeld = meeting.Status.HoldsSlot()
	doc, err := s.GetCollection(MeetingCollectionName).InsertOne(ctx, meeting)
	if mongo.IsDuplicateKeyError(err) {
		log.Printf("CreateMeeting: slot %s on %s for mentor(%s) already taken\n", meeting.TimeSlot, meeting.Date.Format(utils.DateLayout), meeting.Mentor.Hex())
		return utils.TimeSlotNotAvailable
	}
	if err != nil {
		log.Printf("CreateMeeting: error creating meeting: %v\n", err)
		return err
	}
	meeting.Id = doc.InsertedID.(primitive.ObjectID)
	log.Printf("Meeting(menteeId: %s, mentorId: %s, meetingId: %s) created successfully\n", meeting.Mentee.Hex(), meeting.Mentor.Hex(), meeting.Id.Hex())
	return nil
}

func (s *Store) IsSlotBooked(ctx context.Context, mentorId primitive.ObjectID, date time.Time, timeSlot string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	filter := bson.M{
		"mentor":   mentorId,
		"date":     date,
		"timeSlot": timeSlot,
		"slotHeld": true,
	}
	count, err := s.GetCollection(MeetingCollectionName).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		log.Printf("IsSlotBooked: error counting meetings for mentor(%s): %v\n", mentorId.Hex(), err)
		return false, err
	}
	return count > 0, nil
}

// GetMentorMeetings returns the mentor's non-cancelled meetings dated in [from, to).
func (s *Store) GetMentorMeetings(ctx context.Context, mentorId primitive.ObjectID, from, to time.Time) ([]model.Meeting, error) {
	filter := bson.M{
		"mentor": mentorId,
		"date":   bson.M{"$gte": from, "$lt": to},
		"status": bson.M{"$ne": model.Cancelled},
	}
	return s.findMeetings(ctx, filter)
}

func (s *Store) GetUserMeetings(ctx context.Context, userId primitive.ObjectID, asMentor bool) ([]model.Meeting, error) {
	filter := bson.M{"mentee": userId}
	if asMentor {
		filter = bson.M{"$or": bson.A{bson.M{"mentor": userId}, bson.M{"mentee": userId}}}
	}
	return s.findMeetings(ctx, filter)
}

func (s *Store) findMeetings(ctx context.Context, filter bson.M) ([]model.Meeting, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{"date", 1}, {"timeSlot", 1}})
	cursor, err := s.GetCollection(MeetingCollectionName).Find(ctx, filter, opts)
	if err != nil {
		log.Printf("findMeetings: failed to find meetings(%v): %v\n", filter, err)
		return nil, err
	}
	defer cursor.Close(ctx)
	meetings := []model.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		log.Printf("findMeetings: failed to decode meetings: %v\n", err)
		return nil, err
	}
	return meetings, nil
}

func (s *Store) GetMeeting(ctx context.Context, id primitive.ObjectID) (*model.Meeting, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	var meeting model.Meeting
	err := s.GetCollection(MeetingCollectionName).FindOne(ctx, bson.M{"_id": id}).Decode(&meeting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.MeetingNotFound
	}
	if err != nil {
		log.Printf("GetMeeting: failed to find meeting(%s): %v\n", id.Hex(), err)
		return nil, err
	}
	return &meeting, nil
}

// UpdateMeetingStatus moves the meeting to status `to` only while it is in one of `from`.
func (s *Store) UpdateMeetingStatus(ctx context.Context, id primitive.ObjectID, from []model.MeetingStatus, to model.MeetingStatus) (*model.Meeting, error) {
	updateCtx, cancel := withTimeout(ctx)
	defer cancel()
	filter := bson.M{"_id": id, "status": bson.M{"$in": from}}
	updateOp := bson.M{"$set": bson.M{"status": to, "slotHeld": to.HoldsSlot()}}
	var meeting model.Meeting
	err := s.GetCollection(MeetingCollectionName).FindOneAndUpdate(updateCtx, filter, updateOp,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&meeting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, err := s.GetMeeting(ctx, id); err != nil {
			return nil, err
		}
		return nil, utils.InvalidStatusChange
	}
	if err != nil {
		log.Printf("UpdateMeetingStatus: failed to set meeting(%s) to %s: %v\n", id.Hex(), to, err)
		return nil, err
	}
	return &meeting, nil
}

// ClaimMeetingForReview marks the oldest completed, unreviewed meeting between
// the pair as reviewed and returns it.
func (s *Store) ClaimMeetingForReview(ctx context.Context, mentorId, menteeId primitive.ObjectID) (*model.Meeting, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	filter := bson.M{
		"mentor":   mentorId,
		"mentee":   menteeId,
		"status":   model.Completed,
		"reviewed": bson.M{"$ne": true},
	}
	updateOp := bson.M{"$set": bson.M{"reviewed": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetSort(bson.D{{"date", 1}})
	var meeting model.Meeting
	err := s.GetCollection(MeetingCollectionName).FindOneAndUpdate(ctx, filter, updateOp, opts).Decode(&meeting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NoCompletedMeeting
	}
	if err != nil {
		log.Printf("ClaimMeetingForReview: mentor(%s) mentee(%s): %v\n", mentorId.Hex(), menteeId.Hex(), err)
		return nil, err
	}
	return &meeting, nil
}

func (s *Store) ReleaseReviewClaim(ctx context.Context, meetingId primitive.ObjectID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	_, err := s.GetCollection(MeetingCollectionName).UpdateByID(ctx, meetingId, bson.M{"$set": bson.M{"reviewed": false}})
	if err != nil {
		log.Printf("ReleaseReviewClaim: meeting(%s): %v\n", meetingId.Hex(), err)
	}
	return err
}

func (s *Store) HasCompletedMeeting(ctx context.Context, mentorId, menteeId primitive.ObjectID) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	filter := bson.M{"mentor": mentorId, "mentee": menteeId, "status": model.Completed}
	count, err := s.GetCollection(MeetingCollectionName).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		log.Printf("HasCompletedMeeting: mentor(%s) mentee(%s): %v\n", mentorId.Hex(), menteeId.Hex(), err)
		return false, err
	}
	return count > 0, nil
}

// UpdatePastMeetingsStatus moves every meeting dated before `before` from status `from` to `to`.
func (s *Store) UpdatePastMeetingsStatus(ctx context.Context, before time.Time, from, to model.MeetingStatus) (int64, error) {
	filter := bson.M{"date": bson.M{"$lt": before}, "status": from}
	updateOp := bson.M{"$set": bson.M{"status": to, "slotHeld": to.HoldsSlot()}}
	result, err := s.GetCollection(MeetingCollectionName).UpdateMany(ctx, filter, updateOp)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *Store) GetMeetingsAwaitingReviewEmail(ctx context.Context) ([]model.MeetingNotification, error) {
	cursor, err := s.GetCollection(MeetingCollectionName).Aggregate(ctx, GetMeetingsForReviewNotificationPipeline())
	if err != nil {
		log.Printf("GetMeetingsAwaitingReviewEmail: error executing search in db: %v\n", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var meetings []model.MeetingNotification
	if err = cursor.All(ctx, &meetings); err != nil {
		log.Printf("GetMeetingsAwaitingReviewEmail: failed to fetch meetings: %v\n", err)
		return nil, err
	}
	return meetings, nil
}

func (s *Store) MarkReviewEmailSent(ctx context.Context, meetingId primitive.ObjectID) error {
	_, err := s.GetCollection(MeetingCollectionName).UpdateByID(ctx, meetingId, bson.M{"$set": bson.M{"reviewEmailSent": true}})
	return err
}
