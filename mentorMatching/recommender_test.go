package mentorMatching

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mentorConnect/model"
)

type fakeCompleter struct {
	content string
	err     error
	request openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.request = request
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: f.content}}},
	}, nil
}

func mentors(ratings ...float64) []model.User {
	result := make([]model.User, 0, len(ratings))
	for _, rating := range ratings {
		result = append(result, model.User{Id: primitive.NewObjectID(), Role: model.RoleMentor, Rating: rating})
	}
	return result
}

func TestRecommendUsesModelAnswer(t *testing.T) {
	list := mentors(1, 2, 3, 4, 5)
	completer := &fakeCompleter{content: `["` + list[0].Id.Hex() + `", "` + list[2].Id.Hex() + `", "unknown"]`}
	recommender := &Recommender{client: completer}

	result, err := recommender.Recommend(context.Background(), "I want to learn Go", list)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, list[0].Id, result[0].Id)
	assert.Equal(t, list[2].Id, result[1].Id)

	require.Len(t, completer.request.Messages, 2)
	assert.Contains(t, completer.request.Messages[0].Content, list[4].Id.Hex())
	assert.Equal(t, "I want to learn Go", completer.request.Messages[1].Content)
}

func TestRecommendFallsBackToTopRated(t *testing.T) {
	list := mentors(2, 5, 1, 4)

	for name, recommender := range map[string]*Recommender{
		"no client":    {},
		"client error": {client: &fakeCompleter{err: errors.New("quota")}},
		"empty answer": {client: &fakeCompleter{content: "no idea"}},
	} {
		t.Run(name, func(t *testing.T) {
			result, err := recommender.Recommend(context.Background(), "anything", list)
			require.NoError(t, err)
			require.Len(t, result, 3)
			assert.Equal(t, []float64{5, 4, 2}, []float64{result[0].Rating, result[1].Rating, result[2].Rating})
		})
	}
}

func TestParseChatgptResponse(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, parseChatgptResponse("[\"a\", \"b\",\n\"c\"]"))
	assert.Nil(t, parseChatgptResponse(" "))
}
