package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"nyaya/internal/models/db_models"
	"nyaya/internal/repositories"
	"nyaya/pkg/utils"
)

type AdminServiceInterface interface {
	// GrantAdmin promotes the account matching targetEmail. The caller must
	// already be an admin.
	GrantAdmin(ctx context.Context, caller SessionAccount, targetEmail string) (*db_models.Account, error)
	// RevokeAdmin demotes the target. The fallback role is computed at
	// revoke time: advocate when bar registration exists, general otherwise.
	// Demoting the sole remaining admin is refused.
	RevokeAdmin(ctx context.Context, caller SessionAccount, targetEmail string) (*db_models.Account, error)
}

type AdminService struct {
	accountRepo repositories.AccountRepository
}

func NewAdminService(accountRepo repositories.AccountRepository) AdminServiceInterface {
	return &AdminService{
		accountRepo: accountRepo,
	}
}

func (a *AdminService) GrantAdmin(ctx context.Context, caller SessionAccount, targetEmail string) (*db_models.Account, error) {
	target, err := a.authorizeAndLoad(ctx, caller, targetEmail)
	if err != nil {
		return nil, err
	}

	if target.Role == db_models.RoleAdmin {
		return target, nil
	}

	target.Role = db_models.RoleAdmin
	if err := a.accountRepo.Save(ctx, target); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Info().
		Str("granted_by", caller.Email).
		Str("target", target.Email).
		Msg("admin role granted")

	return target, nil
}

func (a *AdminService) RevokeAdmin(ctx context.Context, caller SessionAccount, targetEmail string) (*db_models.Account, error) {
	target, err := a.authorizeAndLoad(ctx, caller, targetEmail)
	if err != nil {
		return nil, err
	}

	if target.Role == db_models.RoleAdmin {
		admins, err := a.accountRepo.CountByRole(ctx, db_models.RoleAdmin)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if admins <= 1 {
			return nil, utils.ErrLastAdmin
		}
	}

	// Never fall back to admin; the bar check runs now, not at grant time.
	if target.HasBarRegistration() {
		target.Role = db_models.RoleAdvocate
	} else {
		target.Role = db_models.RoleGeneral
	}

	if err := a.accountRepo.Save(ctx, target); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Info().
		Str("revoked_by", caller.Email).
		Str("target", target.Email).
		Str("new_role", string(target.Role)).
		Msg("admin role revoked")

	return target, nil
}

func (a *AdminService) authorizeAndLoad(ctx context.Context, caller SessionAccount, targetEmail string) (*db_models.Account, error) {
	if caller.Role != db_models.RoleAdmin {
		return nil, utils.ErrUnauthorized
	}

	target, err := a.accountRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil {
		return nil, utils.ErrAccountNotFound
	}

	return target, nil
}
