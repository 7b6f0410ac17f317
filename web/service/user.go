package service

import (
	"errors"

	"bookshop/database"
	"bookshop/database/model"
	"bookshop/logger"
	"bookshop/util/crypto"

	"gorm.io/gorm"
)

var (
	ErrMissingField  = errors.New("username and password are required")
	ErrUsernameTaken = errors.New("username is already taken")
)

// UserService manages the registered-user directory.
type UserService struct{}

// Register creates a new user. Usernames are unique with a case-sensitive
// exact match; passwords are stored bcrypt-hashed. No token is issued here.
func (s *UserService) Register(username string, password string) error {
	if username == "" || password == "" {
		return ErrMissingField
	}
	if s.Exists(username) {
		return ErrUsernameTaken
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := db.Create(user).Error; err != nil {
		// Two racing registrations can both pass the Exists check; the
		// unique index decides the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Exists reports whether a user with this exact username is registered.
func (s *UserService) Exists(username string) bool {
	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	if err != nil {
		logger.Warning("check username err:", err)
		return false
	}
	return count > 0
}

// CheckUser returns the user matching the credentials, or nil.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// Verify reports whether the credentials match a registered user.
func (s *UserService) Verify(username string, password string) bool {
	return s.CheckUser(username, password) != nil
}
