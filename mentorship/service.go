// Package mentorship holds the application operations behind the HTTP handlers:
// accounts, mentor profiles, availability, booking, meeting status changes, reviews
// and notifications.
package mentorship

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mentorConnect/emailNotifications"
	"mentorConnect/model"
	"mentorConnect/utils"
)

const emailTimeout = 30 * time.Second

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetMentors(ctx context.Context, filter model.MentorFilter) ([]model.User, error)
	UpdateMentorProfile(ctx context.Context, id primitive.ObjectID, profile model.MentorProfile) (*model.User, error)
	AppendReview(ctx context.Context, mentorId primitive.ObjectID, review model.Review) (*model.User, error)
}

type MeetingStore interface {
	CreateMeeting(ctx context.Context, meeting *model.Meeting) error
	IsSlotBooked(ctx context.Context, mentorId primitive.ObjectID, date time.Time, timeSlot string) (bool, error)
	GetMentorMeetings(ctx context.Context, mentorId primitive.ObjectID, from, to time.Time) ([]model.Meeting, error)
	GetUserMeetings(ctx context.Context, userId primitive.ObjectID, asMentor bool) ([]model.Meeting, error)
	GetMeeting(ctx context.Context, id primitive.ObjectID) (*model.Meeting, error)
	UpdateMeetingStatus(ctx context.Context, id primitive.ObjectID, from []model.MeetingStatus, to model.MeetingStatus) (*model.Meeting, error)
	ClaimMeetingForReview(ctx context.Context, mentorId, menteeId primitive.ObjectID) (*model.Meeting, error)
	ReleaseReviewClaim(ctx context.Context, meetingId primitive.ObjectID) error
	HasCompletedMeeting(ctx context.Context, mentorId, menteeId primitive.ObjectID) (bool, error)
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetUserNotifications(ctx context.Context, userId primitive.ObjectID) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userId primitive.ObjectID) error
}

type Store interface {
	UserStore
	MeetingStore
	NotificationStore
}

type Recommender interface {
	Recommend(ctx context.Context, request string, mentors []model.User) ([]model.User, error)
}

type Service struct {
	store       Store
	mailer      emailNotifications.Sender
	recommender Recommender
	now         func() time.Time
}

func NewService(store Store, mailer emailNotifications.Sender, recommender Recommender) *Service {
	return &Service{
		store:       store,
		mailer:      mailer,
		recommender: recommender,
		now:         time.Now,
	}
}

// sendEmail delivers in the background. Delivery failures are logged and never fail the request.
func (s *Service) sendEmail(message model.EmailMessage) {
	if s.mailer == nil || message.ToEmail == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailTimeout)
		defer cancel()
		if err := s.mailer.Send(ctx, message); err != nil {
			log.Printf("sendEmail: %q to %s: %v\n", message.Subject, message.ToEmail, err)
		}
	}()
}

// getMentor loads a user and hides non-mentors behind MentorNotFound.
func (s *Service) getMentor(ctx context.Context, mentorId primitive.ObjectID) (*model.User, error) {
	mentor, err := s.store.GetUserByID(ctx, mentorId)
	if errors.Is(err, utils.UserNotFound) {
		return nil, utils.MentorNotFound
	}
	if err != nil {
		return nil, err
	}
	if !mentor.IsMentor() {
		return nil, utils.MentorNotFound
	}
	return mentor, nil
}

func parseObjectId(value, field string) (primitive.ObjectID, error) {
	if value == "" {
		return primitive.NilObjectID, utils.NewValidationError("%s is required", field)
	}
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, utils.NewValidationError("Invalid %s", field)
	}
	return id, nil
}
