package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type MeetingStatus string

const (
	Pending   MeetingStatus = "pending"
	Upcoming  MeetingStatus = "upcoming"
	Completed MeetingStatus = "completed"
	Cancelled MeetingStatus = "cancelled"
)

type Meeting struct {
	Id              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Mentor          primitive.ObjectID `json:"mentor" bson:"mentor"`
	Mentee          primitive.ObjectID `json:"mentee" bson:"mentee"`
	Date            time.Time          `json:"date" bson:"date"`
	TimeSlot        string             `json:"timeSlot" bson:"timeSlot"`
	Topic           string             `json:"topic" bson:"topic"`
	Status          MeetingStatus      `json:"status" bson:"status"`
	StatusForMentee string             `json:"statusForMentee,omitempty" bson:"-"`
	StatusForMentor string             `json:"statusForMentor,omitempty" bson:"-"`
	SlotHeld        bool               `json:"-" bson:"slotHeld"`
	Reviewed        bool               `json:"reviewed" bson:"reviewed"`
	ReviewEmailSent bool               `json:"-" bson:"reviewEmailSent"`
	CreatedAt       *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

type GroupedMeetings struct {
	PendingMeetings  []Meeting `json:"pendingMeetings"`
	UpcomingMeetings []Meeting `json:"upcomingMeetings"`
	PastMeetings     []Meeting `json:"pastMeetings"`
}

// MeetingNotification is a meeting joined with both participants, used for outgoing mail.
type MeetingNotification struct {
	MeetingId   primitive.ObjectID `bson:"_id"`
	MentorId    primitive.ObjectID `bson:"mentor"`
	MenteeId    primitive.ObjectID `bson:"mentee"`
	Date        time.Time          `bson:"date"`
	TimeSlot    string             `bson:"timeSlot"`
	Topic       string             `bson:"topic"`
	MentorName  string             `bson:"mentorName"`
	MentorEmail string             `bson:"mentorEmail"`
	MenteeName  string             `bson:"menteeName"`
	MenteeEmail string             `bson:"menteeEmail"`
}

// HoldsSlot reports whether a meeting in this status occupies its (mentor, date, slot).
func (s MeetingStatus) HoldsSlot() bool {
	return s != Cancelled
}

func (s MeetingStatus) GetStatusForMentee() string {
	switch s {
	case Pending:
		return "Pending confirmation from mentor"
	case Upcoming:
		return "Confirmed"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Meeting cancelled"
	default:
		return "Unknown"
	}
}

func (s MeetingStatus) GetStatusForMentor() string {
	switch s {
	case Pending:
		return "Awaiting your confirmation"
	case Upcoming:
		return "Confirmed"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Meeting cancelled"
	default:
		return "Unknown"
	}
}

func (m *Meeting) SetStatusText() {
	m.StatusForMentee = m.Status.GetStatusForMentee()
	m.StatusForMentor = m.Status.GetStatusForMentor()
}

func (m *Meeting) HasParticipant(userId primitive.ObjectID) bool {
	return m.Mentor == userId || m.Mentee == userId
}
