package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nyaya/internal/models/db_models"
	"nyaya/internal/models/response_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

// ExternalIdentity is the verified session payload handed over by the
// identity provider.
type ExternalIdentity struct {
	SubjectID string
	Email     string
	Name      string
	AvatarURL string
}

// SessionAccount is the account view attached to a request. When Transient is
// set the datastore could not be reached in time and the view was built from
// the external identity alone: it is never persisted, carries the default
// role and no premium entitlement, and must be treated as a best-effort
// snapshot.
type SessionAccount struct {
	ID           uuid.UUID
	ExternalID   string
	Email        string
	DisplayName  string
	AvatarURL    string
	Role         db_models.Role
	ProfileState db_models.ProfileState
	IsVerified   bool
	IsPremium    bool
	Transient    bool
}

type SessionServiceInterface interface {
	// Resolve returns the internal account for the identity, creating it on
	// first sight. It never fails: datastore trouble yields a transient view.
	Resolve(ctx context.Context, identity ExternalIdentity) SessionAccount
}

type SessionService struct {
	accountRepo   repositories.AccountRepository
	lookupTimeout time.Duration
}

func NewSessionService(accountRepo repositories.AccountRepository, lookupTimeout time.Duration) SessionServiceInterface {
	if lookupTimeout <= 0 {
		lookupTimeout = 3 * time.Second
	}
	return &SessionService{
		accountRepo:   accountRepo,
		lookupTimeout: lookupTimeout,
	}
}

func (s *SessionService) Resolve(ctx context.Context, identity ExternalIdentity) SessionAccount {
	fallback := transientAccount(identity)

	return utils.GuardQuery(ctx, s.lookupTimeout, fallback, func(ctx context.Context) (SessionAccount, error) {
		account, err := s.accountRepo.FindByExternalID(ctx, identity.SubjectID)
		if err != nil {
			return fallback, err
		}

		if account == nil {
			account, err = s.accountRepo.UpsertByExternalID(ctx, &db_models.Account{
				ExternalID:   identity.SubjectID,
				Email:        identity.Email,
				DisplayName:  identity.Name,
				AvatarURL:    identity.AvatarURL,
				Role:         db_models.RoleGeneral,
				ProfileState: db_models.ProfileUnset,
			})
			if err != nil || account == nil {
				return fallback, err
			}
			log.Info().
				Str("external_id", identity.SubjectID).
				Str("account_id", account.ID.String()).
				Msg("provisioned account on first login")
		}

		return sessionFromAccount(account), nil
	})
}

func transientAccount(identity ExternalIdentity) SessionAccount {
	return SessionAccount{
		ExternalID:   identity.SubjectID,
		Email:        identity.Email,
		DisplayName:  identity.Name,
		AvatarURL:    identity.AvatarURL,
		Role:         db_models.RoleGeneral,
		ProfileState: db_models.ProfileUnset,
		Transient:    true,
	}
}

func sessionFromAccount(account *db_models.Account) SessionAccount {
	return SessionAccount{
		ID:           account.ID,
		ExternalID:   account.ExternalID,
		Email:        account.Email,
		DisplayName:  account.DisplayName,
		AvatarURL:    account.AvatarURL,
		Role:         account.Role,
		ProfileState: account.ProfileState,
		IsVerified:   account.IsVerified,
		IsPremium:    PremiumActive(account, time.Now()),
	}
}

func (s SessionAccount) ToResponse() response_models.AccountResponse {
	id := ""
	if s.ID != uuid.Nil {
		id = s.ID.String()
	}
	return response_models.AccountResponse{
		ID:           id,
		Email:        s.Email,
		DisplayName:  s.DisplayName,
		AvatarURL:    s.AvatarURL,
		Role:         string(s.Role),
		ProfileState: string(s.ProfileState),
		IsVerified:   s.IsVerified,
		IsPremium:    s.IsPremium,
		Transient:    s.Transient,
	}
}
