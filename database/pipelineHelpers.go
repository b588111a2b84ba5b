package database

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorConnect/model"
)

func GetAppendReviewPipeline(review model.Review) mongo.Pipeline {
	return mongo.Pipeline{
		{{"$set", bson.D{
			{"reviews", bson.D{{"$concatArrays", bson.A{
				bson.D{{"$ifNull", bson.A{"$reviews", bson.A{}}}},
				bson.D{{"$literal", bson.A{review}}},
			}}}},
		}}},
		{{"$set", bson.D{
			{"rating", bson.D{{"$avg", "$reviews.rating"}}},
		}}},
	}
}

func GetMeetingsForReviewNotificationPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{"$match", bson.D{
			{"status", model.Completed},
			{"reviewed", bson.D{{"$ne", true}}},
			{"reviewEmailSent", bson.D{{"$ne", true}}},
		}}},
		{{"$lookup", bson.D{
			{"from", UserCollectionName},
			{"localField", "mentee"},
			{"foreignField", "_id"},
			{"as", "menteeInfo"},
		}}},
		{{"$unwind", bson.D{{"path", "$menteeInfo"}}}},
		{{"$lookup", bson.D{
			{"from", UserCollectionName},
			{"localField", "mentor"},
			{"foreignField", "_id"},
			{"as", "mentorInfo"},
		}}},
		{{"$unwind", bson.D{{"path", "$mentorInfo"}}}},
		{{"$project", bson.D{
			{"mentor", 1},
			{"mentee", 1},
			{"date", 1},
			{"timeSlot", 1},
			{"topic", 1},
			{"menteeName", "$menteeInfo.name"},
			{"menteeEmail", "$menteeInfo.email"},
			{"mentorName", "$mentorInfo.name"},
			{"mentorEmail", "$mentorInfo.email"},
		}}},
	}
}
