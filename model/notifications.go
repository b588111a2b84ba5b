package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Notification struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Recipient primitive.ObjectID `json:"recipient" bson:"recipient"`
	Sender    primitive.ObjectID `json:"sender" bson:"sender"`
	MeetingId primitive.ObjectID `json:"meetingId" bson:"meetingId"`
	Message   string             `json:"message" bson:"message"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt *time.Time         `json:"createdAt" bson:"createdAt"`
}

type EmailMessage struct {
	ToName  string
	ToEmail string
	Subject string
	Body    string
}
