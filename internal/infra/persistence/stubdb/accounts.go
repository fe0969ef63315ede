package stubdb

import (
	"context"
	"strings"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Register creates an account. Unknown roles fall back to customer.
func (b *Backend) Register(ctx context.Context, registration repository.Registration) (entity.User, error) {
	email := normalizeEmail(registration.Email)

	var taken int64
	if err := b.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&taken).Error; err != nil {
		return entity.User{}, errors.Wrap(err, "failed to check email")
	}
	if taken > 0 {
		return entity.User{}, ErrEmailTaken
	}

	hash, err := b.hasher.HashPassword(registration.Password)
	if err != nil {
		return entity.User{}, err
	}

	role := registration.Role
	if role != entity.RoleRestaurant {
		role = entity.RoleCustomer
	}
	user := &model.UserModel{
		Name:         strings.TrimSpace(registration.Name),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(registration.PhoneNumber),
		Role:         role,
		PasswordHash: hash,
	}
	if err := b.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.User{}, ErrEmailTaken
		}

		return entity.User{}, errors.Wrap(err, "failed to create user")
	}

	return toUserDomain(user), nil
}

// Authenticate finds the account by email or phone number and checks the password.
func (b *Backend) Authenticate(ctx context.Context, credentials repository.Credentials) (entity.User, error) {
	query := b.db.WithContext(ctx)
	if credentials.Email != "" {
		query = query.Where("email = ?", normalizeEmail(credentials.Email))
	} else {
		query = query.Where("phone_number = ?", strings.TrimSpace(credentials.PhoneNumber))
	}

	var user model.UserModel
	if err := query.First(&user).Error; err != nil {
		return entity.User{}, notFound(err, ErrInvalidCredentials, "failed to find user")
	}
	if !b.hasher.Matches(user.PasswordHash, credentials.Password) {
		return entity.User{}, ErrInvalidCredentials
	}
	if b.hasher.NeedsRehash(user.PasswordHash) {
		hash, err := b.hasher.HashPassword(credentials.Password)
		if err != nil {
			return entity.User{}, err
		}
		if err := b.updateUser(ctx, user.ID, map[string]any{"password_hash": hash}); err != nil {
			return entity.User{}, err
		}
	}

	return toUserDomain(&user), nil
}

// Profile returns the account with its saved addresses.
func (b *Backend) Profile(ctx context.Context, userID int64) (*repository.Profile, error) {
	user, err := b.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	var addresses []model.AddressModel
	if err := b.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	profile := &repository.Profile{
		User:      toUserDomain(user),
		Addresses: make([]entity.Address, 0, len(addresses)),
	}
	for i := range addresses {
		profile.Addresses = append(profile.Addresses, toAddressDomain(&addresses[i]))
	}

	return profile, nil
}

func (b *Backend) UpdateUsername(ctx context.Context, userID int64, username string) error {
	return b.updateUser(ctx, userID, map[string]any{"name": strings.TrimSpace(username)})
}

// UpdateEmail changes the login email. The new address starts unverified.
func (b *Backend) UpdateEmail(ctx context.Context, userID int64, oldEmail, newEmail string) error {
	user, err := b.user(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email != normalizeEmail(oldEmail) {
		return ErrEmailMismatch
	}

	var taken int64
	if err := b.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("email = ? AND id <> ?", normalizeEmail(newEmail), userID).
		Count(&taken).Error; err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if taken > 0 {
		return ErrEmailTaken
	}

	return b.updateUser(ctx, userID, map[string]any{"email": normalizeEmail(newEmail), "email_verified": false})
}

func (b *Backend) UpdatePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := b.user(ctx, userID)
	if err != nil {
		return err
	}
	if !b.hasher.Matches(user.PasswordHash, oldPassword) {
		return ErrWrongPassword
	}

	hash, err := b.hasher.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return b.updateUser(ctx, userID, map[string]any{"password_hash": hash})
}

func (b *Backend) user(ctx context.Context, userID int64) (*model.UserModel, error) {
	var user model.UserModel
	if err := b.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound, "failed to find user")
	}

	return &user, nil
}

func (b *Backend) updateUser(ctx context.Context, userID int64, fields map[string]any) error {
	result := b.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
