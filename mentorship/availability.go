package mentorship

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slices"

	"mentorConnect/model"
	"mentorConnect/utils"
)

// GetMentorAvailability returns the mentor's offered slots that have no
// non-cancelled meeting on the given day, in the mentor's configured order.
func (s *Service) GetMentorAvailability(ctx context.Context, mentorId string, date string) ([]string, error) {
	id, err := parseObjectId(mentorId, "mentor id")
	if err != nil {
		return nil, err
	}
	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, utils.NewValidationError("Invalid date %q, expected YYYY-MM-DD", date)
	}
	return s.availability(ctx, id, day)
}

func (s *Service) availability(ctx context.Context, mentorId primitive.ObjectID, day time.Time) ([]string, error) {
	mentor, err := s.getMentor(ctx, mentorId)
	if err != nil {
		return nil, err
	}
	booked, err := s.store.GetMentorMeetings(ctx, mentorId, day, day.Add(utils.Day))
	if err != nil {
		return nil, err
	}
	return excludeBookedSlots(mentor.AvailableTimeSlots, booked), nil
}

func excludeBookedSlots(offered []string, booked []model.Meeting) []string {
	availableSlots := make([]string, 0, len(offered))
	for _, slot := range offered {
		isBooked := slices.ContainsFunc(booked, func(m model.Meeting) bool {
			return m.TimeSlot == slot && m.Status.HoldsSlot()
		})
		if !isBooked {
			availableSlots = append(availableSlots, slot)
		}
	}
	return availableSlots
}
