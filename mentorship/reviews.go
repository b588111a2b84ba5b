package mentorship

import (
	"context"
	"errors"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mentorConnect/model"
	"mentorConnect/utils"
)

// AddMentorReview appends the caller's review to the mentor and returns the
// mentor with the recomputed rating.
//
// Every review consumes one completed, not yet reviewed meeting between the
// caller and the mentor, so a mentee gets one review per completed meeting.
func (s *Service) AddMentorReview(ctx context.Context, callerId, mentorId string, request model.ReviewRequest) (*model.User, error) {
	reviewer, err := parseObjectId(callerId, "user id")
	if err != nil {
		return nil, err
	}
	mentorObjId, err := parseObjectId(mentorId, "mentor id")
	if err != nil {
		return nil, err
	}
	if request.Rating < model.MinRating || request.Rating > model.MaxRating {
		return nil, utils.NewValidationError("Rating must be between %d and %d", model.MinRating, model.MaxRating)
	}
	if _, err := s.getMentor(ctx, mentorObjId); err != nil {
		return nil, err
	}

	meeting, err := s.store.ClaimMeetingForReview(ctx, mentorObjId, reviewer)
	if errors.Is(err, utils.NoCompletedMeeting) {
		hasCompleted, checkErr := s.store.HasCompletedMeeting(ctx, mentorObjId, reviewer)
		if checkErr != nil {
			return nil, checkErr
		}
		if hasCompleted {
			return nil, utils.MeetingAlreadyReviewed
		}
		return nil, utils.NoCompletedMeeting
	}
	if err != nil {
		return nil, err
	}

	review := model.Review{
		ReviewId:  primitive.NewObjectID(),
		Reviewer:  reviewer,
		MeetingId: meeting.Id,
		Rating:    request.Rating,
		Comment:   strings.TrimSpace(request.Comment),
		Date:      utils.TimePtr(s.now().UTC()),
	}
	mentor, err := s.store.AppendReview(ctx, mentorObjId, review)
	if err != nil {
		if releaseErr := s.store.ReleaseReviewClaim(ctx, meeting.Id); releaseErr != nil {
			log.Printf("AddMentorReview: failed to release meeting(%s): %v\n", meeting.Id.Hex(), releaseErr)
		}
		return nil, err
	}
	return mentor, nil
}
