package mentorMatching

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/exp/slices"

	"mentorConnect/model"
)

const (
	openApiModel           = openai.GPT3Dot5Turbo1106
	recommendationsCount   = 3
	systemContentBeginning = "You will be provided with a list of mentors to analyze it. After this, the user will submit their request. Your task is to find THREE best mentors for him based on his request and the list of mentors. In response write ONLY list of 3 mentor IDs. Dont include explanation or any other text.\nField Explanation:\n\"mentorId\" - mentor id, use it for response on my requests.\n\"name\": The mentor's name.\n\"about\": A brief introduction from the mentor.\n\"skills\": Skills the mentor possesses.\n\"fields\": Fields of expertise.\n\"yearsOfExperience\": The mentor's total years of experience.\n\"currentCompany\": The mentor's current employer.\n\"rating\": Average rating from mentee reviews.\n\nList of mentors:\n"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type mentorForRequest struct {
	MentorId          string   `json:"mentorId"`
	Name              string   `json:"name"`
	About             string   `json:"about,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	Fields            []string `json:"fields,omitempty"`
	YearsOfExperience float32  `json:"yearsOfExperience"`
	CurrentCompany    string   `json:"currentCompany,omitempty"`
	Rating            float64  `json:"rating"`
}

// Recommender picks the mentors best matching a free-text request.
// Without an OpenAI client it falls back to the top rated mentors.
type Recommender struct {
	client chatCompleter
}

func NewRecommender(apiKey string) *Recommender {
	if apiKey == "" {
		return &Recommender{}
	}
	return &Recommender{client: openai.NewClient(apiKey)}
}

func (r *Recommender) Recommend(ctx context.Context, request string, mentors []model.User) ([]model.User, error) {
	if r.client == nil || len(mentors) <= recommendationsCount {
		return topRated(mentors), nil
	}
	mentorsIds, err := r.sendRequestToChatgpt(ctx, request, mentors)
	if err != nil {
		return topRated(mentors), nil
	}
	filtered := filterMentors(mentors, mentorsIds)
	if len(filtered) == 0 {
		return topRated(mentors), nil
	}
	return filtered, nil
}

func (r *Recommender) sendRequestToChatgpt(ctx context.Context, request string, mentors []model.User) ([]string, error) {
	mentorsForRequest := make([]mentorForRequest, 0, len(mentors))
	for i := range mentors {
		mentorsForRequest = append(mentorsForRequest, mapUserToMentorForRequest(&mentors[i]))
	}
	jsonMentors, err := json.Marshal(mentorsForRequest)
	if err != nil {
		log.Printf("sendRequestToChatgpt: error encoding to JSON: %v\n", err)
		return nil, err
	}
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openApiModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemContentBeginning + string(jsonMentors),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: request,
			},
		},
	})
	if err != nil {
		log.Printf("ChatCompletion error: %v\n", err)
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}
	log.Printf("chatgpt response %s\n", resp.Choices[0].Message.Content)
	return parseChatgptResponse(resp.Choices[0].Message.Content), nil
}

func mapUserToMentorForRequest(user *model.User) mentorForRequest {
	mentor := mentorForRequest{
		MentorId: user.Id.Hex(),
		Name:     user.Name,
		About:    user.About,
		Rating:   user.Rating,
	}
	for _, skill := range user.Skills {
		if skill.Name != "" {
			mentor.Skills = append(mentor.Skills, skill.Name)
		}
	}
	if user.MentorDetails != nil {
		mentor.Fields = user.MentorDetails.Fields
		mentor.YearsOfExperience = user.MentorDetails.YearsOfExperience
		mentor.CurrentCompany = user.MentorDetails.CurrentCompany
	}
	return mentor
}

func parseChatgptResponse(content string) []string {
	replacer := strings.NewReplacer(`"`, "", " ", "", "[", "", "]", "", ",", "\n")
	return removeEmptyStrings(strings.Split(replacer.Replace(content), "\n"))
}

func removeEmptyStrings(slice []string) []string {
	var result []string
	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// filterMentors keeps the mentors named in ids, in the order the model returned them.
func filterMentors(mentors []model.User, ids []string) []model.User {
	var result []model.User
	for _, id := range ids {
		i := slices.IndexFunc(mentors, func(m model.User) bool { return m.Id.Hex() == id })
		if i < 0 || slices.ContainsFunc(result, func(m model.User) bool { return m.Id == mentors[i].Id }) {
			continue
		}
		result = append(result, mentors[i])
		if len(result) == recommendationsCount {
			break
		}
	}
	return result
}

func topRated(mentors []model.User) []model.User {
	sorted := slices.Clone(mentors)
	slices.SortStableFunc(sorted, func(a, b model.User) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	if len(sorted) > recommendationsCount {
		sorted = sorted[:recommendationsCount]
	}
	return sorted
}
