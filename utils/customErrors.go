package utils

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindPreconditionFailed
	KindUnauthorized
	KindForbidden
	KindTooManyRequests
)

// AppError is a failure whose message is safe to show to the caller.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

var (
	UserNotFound           = &AppError{Kind: KindNotFound, Message: "User not found"}
	MentorNotFound         = &AppError{Kind: KindNotFound, Message: "Mentor not found"}
	MeetingNotFound        = &AppError{Kind: KindNotFound, Message: "Meeting not found"}
	NotificationNotFound   = &AppError{Kind: KindNotFound, Message: "Notification not found"}
	TimeSlotNotAvailable   = &AppError{Kind: KindConflict, Message: "Time slot not available"}
	EmailAlreadyRegistered = &AppError{Kind: KindConflict, Message: "Email is already registered"}
	MeetingAlreadyReviewed = &AppError{Kind: KindConflict, Message: "You have already reviewed every completed meeting with this mentor"}
	InvalidStatusChange    = &AppError{Kind: KindConflict, Message: "Meeting status cannot be changed"}
	NoCompletedMeeting     = &AppError{Kind: KindPreconditionFailed, Message: "You must complete a meeting with the mentor before leaving a review"}
	InvalidCredentials     = &AppError{Kind: KindUnauthorized, Message: "Invalid email or password"}
	NotYourProfile         = &AppError{Kind: KindForbidden, Message: "You can only update your own profile"}
	NotMeetingParticipant  = &AppError{Kind: KindForbidden, Message: "You are not allowed to change this meeting"}
)

// NotificationNotCreated marks a booking that was stored while its mentor notification was not.
var NotificationNotCreated = errors.New("meeting notification was not created")
