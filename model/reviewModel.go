package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ReviewId  primitive.ObjectID `json:"reviewId" bson:"reviewId"`
	Reviewer  primitive.ObjectID `json:"reviewer" bson:"reviewer"`
	MeetingId primitive.ObjectID `json:"meetingId" bson:"meetingId"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	Date      *time.Time         `json:"date" bson:"date"`
}

// AverageRating is the mean of all review ratings, 0 for no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews))
}
