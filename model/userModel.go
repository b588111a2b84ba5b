package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Role string

const (
	RoleMentee Role = "mentee"
	RoleMentor Role = "mentor"
)

type User struct {
	Id                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Email              string             `json:"email" bson:"email"`
	Password           string             `json:"-" bson:"password,omitempty"`
	Role               Role               `json:"role" bson:"role"`
	About              string             `json:"about" bson:"about,omitempty"`
	Skills             []Skill            `json:"skills" bson:"skills,omitempty"`
	Rating             float64            `json:"rating" bson:"rating"`
	Reviews            []Review           `json:"reviews" bson:"reviews,omitempty"`
	MentorDetails      *MentorDetails     `json:"mentorDetails,omitempty" bson:"mentorDetails,omitempty"`
	AvailableTimeSlots []string           `json:"availableTimeSlots" bson:"availableTimeSlots,omitempty"`
	CreatedAt          *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

type Skill struct {
	Name  string `json:"name" bson:"name"`
	Level int    `json:"level" bson:"level"`
}

type MentorDetails struct {
	Fields            []string `json:"fields" bson:"fields"`
	YearsOfExperience float32  `json:"yearsOfExperience" bson:"yearsOfExperience"`
	CurrentCompany    string   `json:"currentCompany" bson:"currentCompany"`
	Linkedin          string   `json:"linkedin" bson:"linkedin"`
	Certificates      []string `json:"certificates" bson:"certificates"`
}

func (u *User) IsMentor() bool {
	return u != nil && u.Role == RoleMentor
}

// MentorProfile is everything becomeMentor writes onto a user in one update.
type MentorProfile struct {
	Details            MentorDetails
	About              string
	Skills             []Skill
	AvailableTimeSlots []string
}

type MentorFilter struct {
	Skills        []string
	Fields        []string
	MinExperience float32
	Offset        int64
	Limit         int64
	ByRating      bool
}
