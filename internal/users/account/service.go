// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cinelog/cinelog/internal/platform/apperr"
	"github.com/cinelog/cinelog/internal/platform/sec"
	"github.com/cinelog/cinelog/internal/users/auth"
)

// # Service Layer

// Service orchestrates administrative account management.
//
// It enforces the uniqueness and existence guards before any mutation so a
// failed request never leaves a partial write behind.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Account Management

// CreateInput holds the data an administrator supplies for a new account.
type CreateInput struct {
	Name      string
	Email     string
	Password  string
	Nickname  string
	BirthDate time.Time
	Active    bool
	Role      sec.UserRole
}

/*
Create provisions a new account on behalf of an administrator.

Description: Unlike self-registration, an administrator may choose the
role and activation state of the new account. The email uniqueness guard
runs before any write.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *auth.User: The created account
  - error: Conflict (if email is taken) or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*auth.User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.accountRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Hash the initial password
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user := &auth.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Nickname:     input.Nickname,
		BirthDate:    input.BirthDate,
		Active:       input.Active,
		Role:         input.Role,
	}

	if err := service.accountRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("account_service_create_failed: %w", err)
	}

	service.logger.Info("user_account_created", slog.String("user_id", strconv.FormatInt(user.ID, 10)))

	return user, nil
}

/*
Get retrieves the full identity of a user account.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) Get(context context.Context, userID int64) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every registered account.
func (service *Service) List(context context.Context) ([]auth.User, error) {
	users, err := service.accountRepository.List(context)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, nil
}

// UpdateInput defines the mutable subset of account fields. Nil pointers
// leave the stored value untouched.
type UpdateInput struct {
	ID        int64
	Name      *string
	Email     *string
	Password  *string
	Nickname  *string
	BirthDate *time.Time
	Active    *bool
	Role      *sec.UserRole
}

/*
Update applies a partial set of changes to an existing account.

Description: Fetches the existing account state, overrides the provided
fields, and synchronizes the change to persistent storage. The creation
timestamp is server-managed and never taken from client input. Changing
the email re-runs the uniqueness guard against other accounts.

Parameters:
  - context: context.Context
  - input: UpdateInput

Returns:
  - *auth.User: The updated account
  - error: NotFound, Conflict, or storage failures
*/
func (service *Service) Update(context context.Context, input UpdateInput) (*auth.User, error) {

	// Existence guard: an update must never create a row
	user, err := service.accountRepository.FindByID(context, input.ID)
	if err != nil {
		return nil, err
	}

	// Email changes re-check uniqueness against other accounts
	if input.Email != nil && *input.Email != user.Email {
		if other, err := service.accountRepository.FindByEmail(context, *input.Email); err == nil && other.ID != user.ID {
			return nil, apperr.Conflict("Email is already registered")
		}
		user.Email = *input.Email
	}

	// Apply delta updates
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Nickname != nil {
		user.Nickname = *input.Nickname
	}
	if input.BirthDate != nil {
		user.BirthDate = *input.BirthDate
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Password != nil {
		hashedPassword, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	// Persist changes
	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_account_updated", slog.String("user_id", strconv.FormatInt(user.ID, 10)))

	return user, nil
}

/*
Delete removes an account and cascades to its authored reviews.

Description: The account and every review it wrote disappear together;
the repository runs both deletes in one transaction.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, userID int64) error {

	// Existence guard before the cascading mutation
	if _, err := service.accountRepository.FindByID(context, userID); err != nil {
		return err
	}

	if err := service.accountRepository.DeleteWithReviews(context, userID); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	service.logger.Info("user_account_deleted", slog.String("user_id", strconv.FormatInt(userID, 10)))

	return nil
}
