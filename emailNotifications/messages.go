package emailNotifications

import (
	"fmt"

	"mentorConnect/model"
	"mentorConnect/utils"
)

func MeetingRequestedMessage(meeting *model.Meeting) string {
	return fmt.Sprintf("You have a new meeting request for %s on %s during %s.",
		meeting.Topic, meeting.Date.Format(utils.DateLayout), meeting.TimeSlot)
}

func MeetingRequestedEmail(mentor *model.User, meeting *model.Meeting) model.EmailMessage {
	return model.EmailMessage{
		ToName:  mentor.Name,
		ToEmail: mentor.Email,
		Subject: "New meeting request",
		Body:    MeetingRequestedMessage(meeting),
	}
}

func ContactRequestEmail(mentor, sender *model.User, text string) model.EmailMessage {
	return model.EmailMessage{
		ToName:  mentor.Name,
		ToEmail: mentor.Email,
		Subject: "New contact request from " + sender.Name,
		Body:    fmt.Sprintf("%s (%s) wrote:\n\n%s", sender.Name, sender.Email, text),
	}
}

func MeetingStatusEmail(recipient *model.User, meeting *model.Meeting) model.EmailMessage {
	return model.EmailMessage{
		ToName:  recipient.Name,
		ToEmail: recipient.Email,
		Subject: "Meeting " + string(meeting.Status),
		Body: fmt.Sprintf("Your meeting about %s on %s during %s is now %s.",
			meeting.Topic, meeting.Date.Format(utils.DateLayout), meeting.TimeSlot, meeting.Status),
	}
}

func ReviewRequestEmail(meeting *model.MeetingNotification) model.EmailMessage {
	return model.EmailMessage{
		ToName:  meeting.MenteeName,
		ToEmail: meeting.MenteeEmail,
		Subject: "How was your meeting with " + meeting.MentorName + "?",
		Body: fmt.Sprintf("Hi %s,\n\nyour meeting about %s on %s is completed. Leave a review for %s to help other mentees.",
			meeting.MenteeName, meeting.Topic, meeting.Date.Format(utils.DateLayout), meeting.MentorName),
	}
}
