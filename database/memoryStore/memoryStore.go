// Package memoryStore keeps users, meetings and notifications in process memory.
// It enforces the same unique active slot rule as the Mongo index, so it can
// back local runs (STORAGE=memory) and tests.
package memoryStore

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slices"

	"mentorConnect/model"
	"mentorConnect/utils"
)

type slotKey struct {
	mentor   primitive.ObjectID
	date     int64
	timeSlot string
}

type Store struct {
	mu            sync.Mutex
	users         map[primitive.ObjectID]*model.User
	meetings      map[primitive.ObjectID]*model.Meeting
	notifications map[primitive.ObjectID]*model.Notification
	activeSlots   map[slotKey]primitive.ObjectID
	now           func() time.Time
}

func New() *Store {
	return &Store{
		users:         make(map[primitive.ObjectID]*model.User),
		meetings:      make(map[primitive.ObjectID]*model.Meeting),
		notifications: make(map[primitive.ObjectID]*model.Notification),
		activeSlots:   make(map[slotKey]primitive.ObjectID),
		now:           time.Now,
	}
}

func keyOf(m *model.Meeting) slotKey {
	return slotKey{mentor: m.Mentor, date: m.Date.Unix(), timeSlot: m.TimeSlot}
}

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return utils.EmailAlreadyRegistered
		}
	}
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	s.users[user.Id] = cloneUser(user)
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, utils.UserNotFound
	}
	return cloneUser(u), nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, utils.UserNotFound
}

func (s *Store) GetMentors(_ context.Context, filter model.MentorFilter) ([]model.User, error) {
	s.mu.Lock()
	result := []model.User{}
	for _, u := range s.users {
		if matchesMentorFilter(u, filter) {
			result = append(result, *cloneUser(u))
		}
	}
	s.mu.Unlock()

	slices.SortFunc(result, func(a, b model.User) int {
		if filter.ByRating && a.Rating != b.Rating {
			if a.Rating > b.Rating {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Id.Hex(), b.Id.Hex())
	})
	if filter.Offset > 0 {
		if filter.Offset >= int64(len(result)) {
			return []model.User{}, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < int64(len(result)) {
		result = result[:filter.Limit]
	}
	return result, nil
}

func matchesMentorFilter(u *model.User, filter model.MentorFilter) bool {
	if !u.IsMentor() {
		return false
	}
	for _, skill := range filter.Skills {
		if !slices.ContainsFunc(u.Skills, func(s model.Skill) bool { return s.Name == skill }) {
			return false
		}
	}
	var details model.MentorDetails
	if u.MentorDetails != nil {
		details = *u.MentorDetails
	}
	for _, field := range filter.Fields {
		if !slices.Contains(details.Fields, field) {
			return false
		}
	}
	return details.YearsOfExperience >= filter.MinExperience
}

func (s *Store) UpdateMentorProfile(_ context.Context, id primitive.ObjectID, profile model.MentorProfile) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, utils.UserNotFound
	}
	details := profile.Details
	u.Role = model.RoleMentor
	u.MentorDetails = &details
	if profile.About != "" {
		u.About = profile.About
	}
	if profile.Skills != nil {
		u.Skills = slices.Clone(profile.Skills)
	}
	if profile.AvailableTimeSlots != nil {
		u.AvailableTimeSlots = slices.Clone(profile.AvailableTimeSlots)
	}
	return cloneUser(u), nil
}

func (s *Store) AppendReview(_ context.Context, mentorId primitive.ObjectID, review model.Review) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[mentorId]
	if !ok || !u.IsMentor() {
		return nil, utils.MentorNotFound
	}
	u.Reviews = append(u.Reviews, review)
	u.Rating = model.AverageRating(u.Reviews)
	return cloneUser(u), nil
}

func (s *Store) CreateMeeting(_ context.Context, meeting *model.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meeting.SlotHeld = meeting.Status.HoldsSlot()
	key := keyOf(meeting)
	if meeting.SlotHeld {
		if _, taken := s.activeSlots[key]; taken {
			return utils.TimeSlotNotAvailable
		}
	}
	if meeting.Id.IsZero() {
		meeting.Id = primitive.NewObjectID()
	}
	if meeting.SlotHeld {
		s.activeSlots[key] = meeting.Id
	}
	stored := *meeting
	s.meetings[meeting.Id] = &stored
	return nil
}

func (s *Store) IsSlotBooked(_ context.Context, mentorId primitive.ObjectID, date time.Time, timeSlot string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, taken := s.activeSlots[slotKey{mentor: mentorId, date: date.Unix(), timeSlot: timeSlot}]
	return taken, nil
}

func (s *Store) GetMentorMeetings(_ context.Context, mentorId primitive.ObjectID, from, to time.Time) ([]model.Meeting, error) {
	return s.findMeetings(func(m *model.Meeting) bool {
		return m.Mentor == mentorId && !m.Date.Before(from) && m.Date.Before(to) && m.Status != model.Cancelled
	}), nil
}

func (s *Store) GetUserMeetings(_ context.Context, userId primitive.ObjectID, asMentor bool) ([]model.Meeting, error) {
	return s.findMeetings(func(m *model.Meeting) bool {
		return m.Mentee == userId || (asMentor && m.Mentor == userId)
	}), nil
}

func (s *Store) findMeetings(match func(m *model.Meeting) bool) []model.Meeting {
	s.mu.Lock()
	result := []model.Meeting{}
	for _, m := range s.meetings {
		if match(m) {
			result = append(result, *m)
		}
	}
	s.mu.Unlock()
	slices.SortFunc(result, func(a, b model.Meeting) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.TimeSlot, b.TimeSlot); c != 0 {
			return c
		}
		return strings.Compare(a.Id.Hex(), b.Id.Hex())
	})
	return result
}

func (s *Store) GetMeeting(_ context.Context, id primitive.ObjectID) (*model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return nil, utils.MeetingNotFound
	}
	meeting := *m
	return &meeting, nil
}

func (s *Store) UpdateMeetingStatus(_ context.Context, id primitive.ObjectID, from []model.MeetingStatus, to model.MeetingStatus) (*model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return nil, utils.MeetingNotFound
	}
	if !slices.Contains(from, m.Status) {
		return nil, utils.InvalidStatusChange
	}
	if err := s.setStatus(m, to); err != nil {
		return nil, err
	}
	meeting := *m
	return &meeting, nil
}

// setStatus keeps activeSlots in line with the meeting status. Callers hold s.mu.
func (s *Store) setStatus(m *model.Meeting, to model.MeetingStatus) error {
	key := keyOf(m)
	holds := to.HoldsSlot()
	if holds && !m.SlotHeld {
		if _, taken := s.activeSlots[key]; taken {
			return utils.TimeSlotNotAvailable
		}
		s.activeSlots[key] = m.Id
	}
	if !holds && m.SlotHeld {
		delete(s.activeSlots, key)
	}
	m.Status = to
	m.SlotHeld = holds
	return nil
}

func (s *Store) ClaimMeetingForReview(_ context.Context, mentorId, menteeId primitive.ObjectID) (*model.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var oldest *model.Meeting
	for _, m := range s.meetings {
		if m.Mentor != mentorId || m.Mentee != menteeId || m.Status != model.Completed || m.Reviewed {
			continue
		}
		if oldest == nil || m.Date.Before(oldest.Date) {
			oldest = m
		}
	}
	if oldest == nil {
		return nil, utils.NoCompletedMeeting
	}
	oldest.Reviewed = true
	meeting := *oldest
	return &meeting, nil
}

func (s *Store) ReleaseReviewClaim(_ context.Context, meetingId primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.meetings[meetingId]; ok {
		m.Reviewed = false
	}
	return nil
}

func (s *Store) HasCompletedMeeting(_ context.Context, mentorId, menteeId primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.meetings {
		if m.Mentor == mentorId && m.Mentee == menteeId && m.Status == model.Completed {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpdatePastMeetingsStatus(_ context.Context, before time.Time, from, to model.MeetingStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var modified int64
	for _, m := range s.meetings {
		if m.Status != from || !m.Date.Before(before) {
			continue
		}
		if err := s.setStatus(m, to); err != nil {
			continue
		}
		modified++
	}
	return modified, nil
}

func (s *Store) GetMeetingsAwaitingReviewEmail(_ context.Context) ([]model.MeetingNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.MeetingNotification
	for _, m := range s.meetings {
		if m.Status != model.Completed || m.Reviewed || m.ReviewEmailSent {
			continue
		}
		mentor, mentorOk := s.users[m.Mentor]
		mentee, menteeOk := s.users[m.Mentee]
		if !mentorOk || !menteeOk {
			continue
		}
		result = append(result, model.MeetingNotification{
			MeetingId:   m.Id,
			MentorId:    m.Mentor,
			MenteeId:    m.Mentee,
			Date:        m.Date,
			TimeSlot:    m.TimeSlot,
			Topic:       m.Topic,
			MentorName:  mentor.Name,
			MentorEmail: mentor.Email,
			MenteeName:  mentee.Name,
			MenteeEmail: mentee.Email,
		})
	}
	return result, nil
}

func (s *Store) MarkReviewEmailSent(_ context.Context, meetingId primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.meetings[meetingId]; ok {
		m.ReviewEmailSent = true
	}
	return nil
}

func (s *Store) CreateNotification(_ context.Context, notification *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if notification.Id.IsZero() {
		notification.Id = primitive.NewObjectID()
	}
	if notification.CreatedAt == nil {
		notification.CreatedAt = utils.TimePtr(s.now())
	}
	stored := *notification
	s.notifications[notification.Id] = &stored
	return nil
}

func (s *Store) GetUserNotifications(_ context.Context, userId primitive.ObjectID) ([]model.Notification, error) {
	s.mu.Lock()
	result := []model.Notification{}
	for _, n := range s.notifications {
		if n.Recipient == userId {
			result = append(result, *n)
		}
	}
	s.mu.Unlock()
	slices.SortFunc(result, func(a, b model.Notification) int {
		return b.CreatedAt.Compare(*a.CreatedAt)
	})
	return result, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id, userId primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok || n.Recipient != userId {
		return utils.NotificationNotFound
	}
	n.Read = true
	return nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Skills = slices.Clone(u.Skills)
	c.Reviews = slices.Clone(u.Reviews)
	c.AvailableTimeSlots = slices.Clone(u.AvailableTimeSlots)
	if u.MentorDetails != nil {
		details := *u.MentorDetails
		c.MentorDetails = &details
	}
	return &c
}
