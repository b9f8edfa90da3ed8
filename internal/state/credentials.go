package state

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/shopfront-client/internal/session"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
)

// CredentialRepo implements session.CredentialStore on the state file.
type CredentialRepo struct {
	db *gorm.DB
}

func NewCredentialRepo(db *gorm.DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

func (r *CredentialRepo) SaveCredential(ctx context.Context, persisted session.PersistedSession) error {
	record := CredentialRecord{
		ID:          credentialRowID,
		PrincipalID: persisted.Principal.ID,
		DisplayName: persisted.Principal.DisplayName,
		Email:       persisted.Principal.Email,
		Role:        string(persisted.Principal.Role),
		Credential:  persisted.Credential,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&record).Error
}

func (r *CredentialRepo) LoadCredential(ctx context.Context) (*session.PersistedSession, error) {
	var record CredentialRecord
	err := r.db.WithContext(ctx).First(&record, credentialRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	role, err := enums.ParseUserRole(record.Role)
	if err != nil {
		// A corrupted role means the row is not trustworthy; treat it
		// as absent rather than restoring a half-valid session.
		return nil, nil
	}

	return &session.PersistedSession{
		Principal: session.Principal{
			ID:          record.PrincipalID,
			DisplayName: record.DisplayName,
			Email:       record.Email,
			Role:        role,
		},
		Credential: record.Credential,
	}, nil
}

func (r *CredentialRepo) ClearCredential(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id = ?", credentialRowID).
		Delete(&CredentialRecord{}).Error
}
