package mentorship

import (
	"context"
	"log"
	"strings"

	"golang.org/x/exp/slices"

	"mentorConnect/emailNotifications"
	"mentorConnect/model"
	"mentorConnect/utils"
)

// BookMeeting reserves a mentor's slot for the caller and notifies the mentor.
//
// The availability check is only a fast path. The store rejects a second active
// meeting for the same (mentor, date, slot), and that rejection is reported as
// TimeSlotNotAvailable too.
//
// When the meeting is stored but its notification is not, the meeting is returned
// together with utils.NotificationNotCreated.
func (s *Service) BookMeeting(ctx context.Context, callerId string, request model.BookingRequest) (*model.Meeting, error) {
	menteeId, err := parseObjectId(callerId, "user id")
	if err != nil {
		return nil, err
	}
	mentorId, err := parseObjectId(request.MentorId, "mentorId")
	if err != nil {
		return nil, err
	}
	if request.Date == "" {
		return nil, utils.NewValidationError("date is required")
	}
	day, err := utils.ParseDay(request.Date)
	if err != nil {
		return nil, utils.NewValidationError("Invalid date %q, expected YYYY-MM-DD", request.Date)
	}
	if strings.TrimSpace(request.TimeSlot) == "" {
		return nil, utils.NewValidationError("timeSlot is required")
	}
	slot, err := utils.NormalizeSlotLabels([]string{request.TimeSlot})
	if err != nil {
		return nil, err
	}
	topic := strings.TrimSpace(request.Topic)
	if topic == "" {
		return nil, utils.NewValidationError("topic is required")
	}
	if mentorId == menteeId {
		return nil, utils.NewValidationError("You cannot book a meeting with yourself")
	}

	mentor, err := s.getMentor(ctx, mentorId)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(mentor.AvailableTimeSlots, slot[0]) {
		return nil, utils.TimeSlotNotAvailable
	}
	booked, err := s.store.IsSlotBooked(ctx, mentorId, day, slot[0])
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, utils.TimeSlotNotAvailable
	}

	meeting := &model.Meeting{
		Mentor:    mentorId,
		Mentee:    menteeId,
		Date:      day,
		TimeSlot:  slot[0],
		Topic:     topic,
		Status:    model.Pending,
		CreatedAt: utils.TimePtr(s.now().UTC()),
	}
	if err := s.store.CreateMeeting(ctx, meeting); err != nil {
		return nil, err
	}
	meeting.SetStatusText()

	notification := &model.Notification{
		Recipient: mentorId,
		Sender:    menteeId,
		MeetingId: meeting.Id,
		Message:   emailNotifications.MeetingRequestedMessage(meeting),
		CreatedAt: utils.TimePtr(s.now().UTC()),
	}
	if err := s.store.CreateNotification(ctx, notification); err != nil {
		log.Printf("BookMeeting: meeting(%s) booked but notification failed: %v\n", meeting.Id.Hex(), err)
		return meeting, utils.NotificationNotCreated
	}
	s.sendEmail(emailNotifications.MeetingRequestedEmail(mentor, meeting))
	return meeting, nil
}
