// Package service implements the auth flow of userdash: registration,
// credential verification and user lookups over the credential store.
package service

import (
	"errors"

	"userdash/database"
	"userdash/database/model"
	"userdash/logger"
	"userdash/util/crypto"
)

// Sentinel errors surfaced to the forms. Anything else coming out of the
// service is a storage fault and becomes a server error.
var (
	ErrMissingField       = errors.New("please provide a username, password, and name")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long and contain at least 1 special character and 1 number")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct{}

// Register validates the input, hashes the password and persists the new
// user. The username pre-check gives the friendly duplicate error; the
// unique index on username is the authoritative guard, so a constraint
// violation from the insert maps to the same error.
func (s *UserService) Register(username, password, name string) (*model.User, error) {
	if username == "" || password == "" || name == "" {
		return nil, ErrMissingField
	}

	existing, err := s.GetUser(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	if !IsValidPassword(password) {
		return nil, ErrWeakPassword
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
	}

	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		if database.IsUniqueConstraintViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	logger.Infof("New user registered: %s", username)
	return user, nil
}

// Authenticate verifies username/password. Unknown username, wrong password
// and any hash verification failure all collapse into ErrInvalidCredentials
// so the response never reveals which one happened.
func (s *UserService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.GetUser(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Warningf("password verification error for %s: %v", username, err)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser looks up a user by exact username. A missing user is (nil, nil).
func (s *UserService) GetUser(username string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) CountUsers() (int64, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).Count(&count).Error
	return count, err
}
