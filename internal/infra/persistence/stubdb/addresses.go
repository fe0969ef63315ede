package stubdb

import (
	"context"
	"strconv"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"
)

// AddAddress saves an address and returns it with its server id.
func (b *Backend) AddAddress(ctx context.Context, userID int64, address entity.Address) (entity.Address, error) {
	if _, err := b.user(ctx, userID); err != nil {
		return entity.Address{}, err
	}

	m := fromAddressDomain(userID, address)
	if err := b.db.WithContext(ctx).Create(m).Error; err != nil {
		return entity.Address{}, errors.Wrap(err, "failed to create address")
	}

	return toAddressDomain(m), nil
}

// RemoveAddress deletes one of the user's addresses.
func (b *Backend) RemoveAddress(ctx context.Context, userID int64, addressID string) error {
	id, err := strconv.ParseInt(addressID, 10, 64)
	if err != nil {
		return ErrInvalidAddressID
	}

	result := b.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}

	return nil
}
