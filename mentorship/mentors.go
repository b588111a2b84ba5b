package mentorship

import (
	"context"
	"strings"

	"mentorConnect/emailNotifications"
	"mentorConnect/model"
	"mentorConnect/utils"
)

const (
	defaultSkillLevel = 3
	linkedinPrefix    = "linkedin.com/in/"
	maxMentorsLimit   = 100
)

// BecomeMentor turns the caller into a mentor. The request may name the caller's
// own id only.
func (s *Service) BecomeMentor(ctx context.Context, callerId string, request model.BecomeMentorRequest) (*model.User, error) {
	caller, err := parseObjectId(callerId, "user id")
	if err != nil {
		return nil, err
	}
	if request.Id != "" && request.Id != callerId {
		return nil, utils.NotYourProfile
	}
	if request.YearsOfExperience < 0 {
		return nil, utils.NewValidationError("Years of experience cannot be negative")
	}
	slots, err := utils.NormalizeSlotLabels(request.AvailableTimeSlots)
	if err != nil {
		return nil, err
	}

	profile := model.MentorProfile{
		Details: model.MentorDetails{
			Fields:            nonEmpty(request.Fields),
			YearsOfExperience: request.YearsOfExperience,
			CurrentCompany:    strings.TrimSpace(request.CurrentCompany),
			Linkedin:          utils.MakeURL(request.Linkedin, linkedinPrefix),
			Certificates:      nonEmpty(request.Certificates),
		},
		About:              strings.TrimSpace(request.About),
		AvailableTimeSlots: slots,
	}
	if request.Skills != nil {
		profile.Skills = make([]model.Skill, 0, len(request.Skills))
		for _, skill := range request.Skills {
			name := strings.TrimSpace(skill.Name)
			if name == "" {
				continue
			}
			if skill.Level == 0 {
				skill.Level = defaultSkillLevel
			}
			profile.Skills = append(profile.Skills, model.Skill{Name: name, Level: skill.Level})
		}
	}
	return s.store.UpdateMentorProfile(ctx, caller, profile)
}

func (s *Service) ListMentors(ctx context.Context, filter model.MentorFilter) ([]model.User, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, utils.NewValidationError("Offset and limit must not be negative")
	}
	if filter.Limit > maxMentorsLimit {
		filter.Limit = maxMentorsLimit
	}
	return s.store.GetMentors(ctx, filter)
}

func (s *Service) GetMentor(ctx context.Context, mentorId string) (*model.User, error) {
	id, err := parseObjectId(mentorId, "mentor id")
	if err != nil {
		return nil, err
	}
	return s.getMentor(ctx, id)
}

// ContactMentor checks the mentor exists and forwards the message by email.
func (s *Service) ContactMentor(ctx context.Context, callerId string, request model.ContactRequest) error {
	mentorId, err := parseObjectId(request.MentorId, "mentorId")
	if err != nil {
		return err
	}
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return utils.NewValidationError("Message is required")
	}
	mentor, err := s.getMentor(ctx, mentorId)
	if err != nil {
		return err
	}
	sender, err := s.GetProfile(ctx, callerId)
	if err != nil {
		return err
	}
	s.sendEmail(emailNotifications.ContactRequestEmail(mentor, sender, message))
	return nil
}

func (s *Service) RecommendMentors(ctx context.Context, request model.RecommendationRequest) ([]model.User, error) {
	text := strings.TrimSpace(request.Request)
	if text == "" {
		return nil, utils.NewValidationError("Request is required")
	}
	mentors, err := s.store.GetMentors(ctx, model.MentorFilter{})
	if err != nil {
		return nil, err
	}
	return s.recommender.Recommend(ctx, text, mentors)
}

func nonEmpty(values []string) []string {
	result := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
