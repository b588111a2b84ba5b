package schedulerJobs

import (
	"context"
	"log"

	"mentorConnect/emailNotifications"
)

// sendReviewEmails asks mentees of completed, unreviewed meetings for a review, once per meeting.
func (j *Jobs) sendReviewEmails() {
	runJobWithTimeout(func(ctx context.Context) {
		meetings, err := j.store.GetMeetingsAwaitingReviewEmail(ctx)
		if err != nil {
			log.Printf("SendReviewEmails: failed to fetch meetings: %v\n", err)
			return
		}
		log.Printf("sendReviewEmails count: %v\n", len(meetings))
		for i := range meetings {
			meeting := &meetings[i]
			if err := j.mailer.Send(ctx, emailNotifications.ReviewRequestEmail(meeting)); err != nil {
				continue
			}
			if err := j.store.MarkReviewEmailSent(ctx, meeting.MeetingId); err != nil {
				log.Printf("SendReviewEmails: failed to mark meeting(%s): %v\n", meeting.MeetingId.Hex(), err)
			}
		}
	})
}
