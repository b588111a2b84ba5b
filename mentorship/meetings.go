package mentorship

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mentorConnect/emailNotifications"
	"mentorConnect/model"
	"mentorConnect/utils"
)

func (s *Service) ListMyMeetings(ctx context.Context, callerId string) (model.GroupedMeetings, error) {
	user, err := s.GetProfile(ctx, callerId)
	if err != nil {
		return model.GroupedMeetings{}, err
	}
	meetings, err := s.store.GetUserMeetings(ctx, user.Id, user.IsMentor())
	if err != nil {
		return model.GroupedMeetings{}, err
	}
	return groupMeetingsByStatus(meetings), nil
}

func groupMeetingsByStatus(meetings []model.Meeting) model.GroupedMeetings {
	grouped := model.GroupedMeetings{
		PendingMeetings:  []model.Meeting{},
		UpcomingMeetings: []model.Meeting{},
		PastMeetings:     []model.Meeting{},
	}
	for _, m := range meetings {
		m.SetStatusText()
		switch m.Status {
		case model.Pending:
			grouped.PendingMeetings = append(grouped.PendingMeetings, m)
		case model.Upcoming:
			grouped.UpcomingMeetings = append(grouped.UpcomingMeetings, m)
		default:
			grouped.PastMeetings = append(grouped.PastMeetings, m)
		}
	}
	return grouped
}

// ConfirmMeeting lets the meeting's mentor accept a pending request.
func (s *Service) ConfirmMeeting(ctx context.Context, callerId, meetingId string) (*model.Meeting, error) {
	meeting, caller, err := s.loadMeetingFor(ctx, callerId, meetingId)
	if err != nil {
		return nil, err
	}
	if meeting.Mentor != caller {
		return nil, utils.NotMeetingParticipant
	}
	return s.changeStatus(ctx, meeting, []model.MeetingStatus{model.Pending}, model.Upcoming, meeting.Mentee)
}

// CancelMeeting lets either participant cancel a meeting that has not happened yet.
// Cancelling frees the slot for new bookings.
func (s *Service) CancelMeeting(ctx context.Context, callerId, meetingId string) (*model.Meeting, error) {
	meeting, caller, err := s.loadMeetingFor(ctx, callerId, meetingId)
	if err != nil {
		return nil, err
	}
	if !meeting.HasParticipant(caller) {
		return nil, utils.NotMeetingParticipant
	}
	other := meeting.Mentor
	if caller == meeting.Mentor {
		other = meeting.Mentee
	}
	return s.changeStatus(ctx, meeting, []model.MeetingStatus{model.Pending, model.Upcoming}, model.Cancelled, other)
}

func (s *Service) loadMeetingFor(ctx context.Context, callerId, meetingId string) (*model.Meeting, primitive.ObjectID, error) {
	caller, err := parseObjectId(callerId, "user id")
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	id, err := parseObjectId(meetingId, "meeting id")
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	meeting, err := s.store.GetMeeting(ctx, id)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	return meeting, caller, nil
}

func (s *Service) changeStatus(ctx context.Context, meeting *model.Meeting, from []model.MeetingStatus, to model.MeetingStatus, notify primitive.ObjectID) (*model.Meeting, error) {
	updated, err := s.store.UpdateMeetingStatus(ctx, meeting.Id, from, to)
	if err != nil {
		return nil, err
	}
	updated.SetStatusText()
	if recipient, err := s.store.GetUserByID(ctx, notify); err == nil {
		s.sendEmail(emailNotifications.MeetingStatusEmail(recipient, updated))
	}
	return updated, nil
}
