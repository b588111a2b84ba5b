package mentorship

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"mentorConnect/auth"
	"mentorConnect/model"
	"mentorConnect/utils"
)

const minPasswordLength = 8

// Register creates a mentee account. Becoming a mentor is a separate step.
func (s *Service) Register(ctx context.Context, credentials model.Auth) (*model.User, error) {
	email, err := validateEmail(credentials.Email)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(credentials.Name)
	if name == "" {
		return nil, utils.NewValidationError("Name is required")
	}
	if len(credentials.Password) < minPasswordLength {
		return nil, utils.NewValidationError("Password must be at least %d characters", minPasswordLength)
	}
	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      model.RoleMentee,
		CreatedAt: utils.TimePtr(s.now().UTC()),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, credentials model.Auth) (*model.User, error) {
	email, err := validateEmail(credentials.Email)
	if err != nil {
		return nil, err
	}
	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, utils.UserNotFound) {
		return nil, utils.InvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, credentials.Password) {
		return nil, utils.InvalidCredentials
	}
	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userId string) (*model.User, error) {
	id, err := parseObjectId(userId, "user id")
	if err != nil {
		return nil, err
	}
	return s.store.GetUserByID(ctx, id)
}

func validateEmail(value string) (string, error) {
	address, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil {
		return "", utils.NewValidationError("Email is not valid")
	}
	return strings.ToLower(address.Address), nil
}
