package session

import (
	"context"

	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const accessTokenSlot = "access_token"

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a token store persisted in the sessions table.
func NewGormStore(db *gorm.DB) service.TokenStore {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context) (string, error) {
	var row model.SessionModel
	err := s.db.WithContext(ctx).Where("slot = ?", accessTokenSlot).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to read session token")
	}

	return row.Token, nil
}

func (s *gormStore) Set(ctx context.Context, token string) error {
	row := model.SessionModel{Slot: accessTokenSlot, Token: token}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "failed to store session token")
	}

	return nil
}

func (s *gormStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Where("slot = ?", accessTokenSlot).Delete(&model.SessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear session token")
	}

	return nil
}
