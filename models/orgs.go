package models

import (
	"errors"

	"github.com/orgspacehq/orgspace/common/log"
	"gorm.io/gorm"
)

type Organization struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
}

func (Organization) TableName() string { return "organisations" }

type Membership struct {
	UserID string `gorm:"column:user_id;primaryKey"`
	OrgID  string `gorm:"column:org_id;primaryKey"`
}

func (Membership) TableName() string { return "user_organisations" }

func (s *Store) ListOrganizationsByUserID(userID string) ([]Organization, error) {
	log.Debugf("listing organisations for user=%s", userID)
	var orgs []Organization
	err := s.db.Raw(`
	SELECT o.id, o.name, o.description
	FROM organisations o
	JOIN user_organisations uo ON o.id = uo.org_id
	WHERE uo.user_id = ?`, userID).
		Scan(&orgs).Error
	if err != nil {
		log.Errorf("failed to list organisations, reason=%v", err)
		return nil, err
	}
	return orgs, nil
}

// GetOrganizationForMember fetches an organisation only if the given user
// is a member, it returns ErrNotFound otherwise so callers can not probe
// for organisations they do not belong to.
func (s *Store) GetOrganizationForMember(orgID, userID string) (*Organization, error) {
	log.Debugf("getting organisation=%s for user=%s", orgID, userID)
	var org Organization
	err := s.db.Raw(`
	SELECT o.id, o.name, o.description
	FROM organisations o
	JOIN user_organisations uo ON o.id = uo.org_id
	WHERE o.id = ? AND uo.user_id = ?`, orgID, userID).
		First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Errorf("failed to get organisation, reason=%v", err)
		return nil, err
	}
	return &org, nil
}

func (s *Store) IsOrganizationMember(orgID, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&Membership{}).
		Where("org_id = ? AND user_id = ?", orgID, userID).
		Count(&count).Error
	if err != nil {
		log.Errorf("failed to check organisation membership, reason=%v", err)
		return false, err
	}
	return count > 0, nil
}

// CreateOrganizationWithMember persists the organisation and the membership
// of its creating user in a single transaction.
func (s *Store) CreateOrganizationWithMember(org *Organization, userID string) error {
	log.Infof("creating organisation=%s for user=%s", org.ID, userID)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		return tx.Create(&Membership{UserID: userID, OrgID: org.ID}).Error
	})
}

// AddOrganizationMember inserts a membership row. It returns
// ErrAlreadyExists when the membership is already present and ErrNotFound
// when the referenced user or organisation does not exist.
func (s *Store) AddOrganizationMember(orgID, userID string) error {
	log.Infof("adding user=%s to organisation=%s", userID, orgID)
	err := s.db.Create(&Membership{UserID: userID, OrgID: orgID}).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrNotFound
	default:
		log.Errorf("failed to add organisation member, reason=%v", err)
		return err
	}
}
