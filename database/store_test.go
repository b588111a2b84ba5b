package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"mentorConnect/model"
	"mentorConnect/utils"
)

func TestMeetingStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mentorId := primitive.NewObjectID()
	menteeId := primitive.NewObjectID()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mt.Run("create meeting", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		meeting := &model.Meeting{Mentor: mentorId, Mentee: menteeId, Date: day, TimeSlot: "09:00-10:00", Status: model.Pending}
		require.NoError(mt, store.CreateMeeting(context.Background(), meeting))
		assert.False(mt, meeting.Id.IsZero())
		assert.True(mt, meeting.SlotHeld)
	})

	mt.Run("duplicate slot is not available", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: meetings index: " + activeSlotIndexName,
		}))

		meeting := &model.Meeting{Mentor: mentorId, Mentee: menteeId, Date: day, TimeSlot: "09:00-10:00", Status: model.Pending}
		err := store.CreateMeeting(context.Background(), meeting)
		assert.ErrorIs(mt, err, utils.TimeSlotNotAvailable)
		assert.True(mt, meeting.Id.IsZero())
	})

	mt.Run("slot booked", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mentorConnect.meetings", mtest.FirstBatch, bson.D{{"n", int64(1)}}))

		booked, err := store.IsSlotBooked(context.Background(), mentorId, day, "09:00-10:00")
		require.NoError(mt, err)
		assert.True(mt, booked)
	})

	mt.Run("mentor meetings for day", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		first := mtest.CreateCursorResponse(0, "mentorConnect.meetings", mtest.FirstBatch,
			bson.D{{"_id", primitive.NewObjectID()}, {"mentor", mentorId}, {"mentee", menteeId}, {"date", day}, {"timeSlot", "09:00-10:00"}, {"status", "pending"}, {"slotHeld", true}},
		)
		mt.AddMockResponses(first)

		meetings, err := store.GetMentorMeetings(context.Background(), mentorId, day, day.Add(utils.Day))
		require.NoError(mt, err)
		require.Len(mt, meetings, 1)
		assert.Equal(mt, "09:00-10:00", meetings[0].TimeSlot)
		assert.Equal(mt, model.Pending, meetings[0].Status)
	})

	mt.Run("status change on missing meeting", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, "mentorConnect.meetings", mtest.FirstBatch),
		)

		_, err := store.UpdateMeetingStatus(context.Background(), primitive.NewObjectID(), []model.MeetingStatus{model.Pending}, model.Upcoming)
		assert.ErrorIs(mt, err, utils.MeetingNotFound)
	})

	mt.Run("status change from wrong status", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			mtest.CreateCursorResponse(0, "mentorConnect.meetings", mtest.FirstBatch,
				bson.D{{"_id", id}, {"mentor", mentorId}, {"status", "cancelled"}}),
		)

		_, err := store.UpdateMeetingStatus(context.Background(), id, []model.MeetingStatus{model.Pending}, model.Upcoming)
		assert.ErrorIs(mt, err, utils.InvalidStatusChange)
	})

	mt.Run("no completed meeting to review", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := store.ClaimMeetingForReview(context.Background(), mentorId, menteeId)
		assert.ErrorIs(mt, err, utils.NoCompletedMeeting)
	})
}

func TestUserStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("user not found", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mentorConnect.users", mtest.FirstBatch))

		_, err := store.GetUserByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, utils.UserNotFound)
	})

	mt.Run("user found", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mentorConnect.users", mtest.FirstBatch,
			bson.D{{"_id", id}, {"name", "Ada"}, {"role", "mentor"}, {"availableTimeSlots", bson.A{"09:00-10:00"}}}))

		user, err := store.GetUserByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, "Ada", user.Name)
		assert.True(mt, user.IsMentor())
		assert.Equal(mt, []string{"09:00-10:00"}, user.AvailableTimeSlots)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := store.CreateUser(context.Background(), &model.User{Email: "ada@example.com", Role: model.RoleMentee})
		assert.ErrorIs(mt, err, utils.EmailAlreadyRegistered)
	})

	mt.Run("append review to missing mentor", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := store.AppendReview(context.Background(), primitive.NewObjectID(), model.Review{Rating: 5})
		assert.ErrorIs(mt, err, utils.MentorNotFound)
	})

	mt.Run("append review returns recomputed mentor", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{"_id", id},
			{"role", "mentor"},
			{"rating", 4.0},
			{"reviews", bson.A{bson.D{{"rating", 4}}, bson.D{{"rating", 5}}, bson.D{{"rating", 3}}}},
		}}))

		mentor, err := store.AppendReview(context.Background(), id, model.Review{Rating: 3})
		require.NoError(mt, err)
		assert.Equal(mt, 4.0, mentor.Rating)
		assert.Len(mt, mentor.Reviews, 3)
	})

	mt.Run("mark missing notification read", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := store.MarkNotificationRead(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, utils.NotificationNotFound)
	})
}

func TestBuildMentorFilter(t *testing.T) {
	filter := buildMentorFilter(model.MentorFilter{
		Skills:        []string{"go"},
		Fields:        []string{"backend"},
		MinExperience: 3,
	})
	assert.Equal(t, model.RoleMentor, filter["role"])
	assert.Equal(t, bson.M{"$all": []string{"go"}}, filter["skills.name"])
	assert.Equal(t, bson.M{"$all": []string{"backend"}}, filter["mentorDetails.fields"])
	assert.Equal(t, bson.M{"$gte": float32(3)}, filter["mentorDetails.yearsOfExperience"])

	assert.Equal(t, bson.M{"role": model.RoleMentor}, buildMentorFilter(model.MentorFilter{}))
}

func TestAppendReviewPipelineKeepsCommentLiteral(t *testing.T) {
	review := model.Review{Rating: 5, Comment: "$reviews was worth it"}
	pipeline := GetAppendReviewPipeline(review)
	require.Len(t, pipeline, 2)

	raw, err := bson.MarshalExtJSON(bson.D{{"pipeline", pipeline}}, false, false)
	require.NoError(t, err)
	json := string(raw)
	assert.Contains(t, json, `"$literal":[{"reviewId":`)
	assert.Contains(t, json, `"comment":"$reviews was worth it"`)
	assert.Contains(t, json, `"rating":{"$avg":"$reviews.rating"}`)
}
