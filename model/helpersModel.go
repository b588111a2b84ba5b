package model

type Auth struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

type BecomeMentorRequest struct {
	Id                 string   `json:"_id"`
	Fields             []string `json:"fields"`
	YearsOfExperience  float32  `json:"yearsOfExperience"`
	CurrentCompany     string   `json:"currentCompany"`
	Linkedin           string   `json:"linkedin"`
	About              string   `json:"about"`
	Skills             []Skill  `json:"skills"`
	Certificates       []string `json:"certificates"`
	AvailableTimeSlots []string `json:"availableTimeSlots"`
}

type BookingRequest struct {
	MentorId string `json:"mentorId"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Topic    string `json:"topic"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ContactRequest struct {
	MentorId string `json:"mentorId"`
	Message  string `json:"message"`
}

type RecommendationRequest struct {
	Request string `json:"request"`
}
