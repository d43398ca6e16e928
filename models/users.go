package models

import (
	"errors"

	"github.com/orgspacehq/orgspace/common/log"
	"gorm.io/gorm"
)

type User struct {
	ID             string `gorm:"column:id;primaryKey"`
	FirstName      string `gorm:"column:first_name"`
	LastName       string `gorm:"column:last_name"`
	Email          string `gorm:"column:email"`
	HashedPassword string `gorm:"column:hashed_password"`
	Phone          string `gorm:"column:phone"`
}

func (User) TableName() string { return "users" }

// GetUserByEmail returns nil without an error when no user matches,
// absence is a regular outcome for the registration and login flows.
func (s *Store) GetUserByEmail(email string) (*User, error) {
	log.Debugf("getting user by email=%s", email)
	var user User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Errorf("failed to get user by email, reason=%v", err)
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByID(userID string) (*User, error) {
	log.Debugf("getting user=%s", userID)
	var user User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Errorf("failed to get user, reason=%v", err)
		return nil, err
	}
	return &user, nil
}

// CreateUserWithDefaultOrg persists the user, its default organisation and
// the membership linking both in a single transaction. A failure in any of
// the statements rolls back the whole sequence.
func (s *Store) CreateUserWithDefaultOrg(user *User, org *Organization) error {
	log.Infof("creating user=%s with default org=%s", user.ID, org.ID)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		return tx.Create(&Membership{UserID: user.ID, OrgID: org.ID}).Error
	})
}
