package impl

import (
	"context"
	"log/slog"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/errors"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"
	"freshdeal/internal/util"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	session usecase.SessionUsecase
	repo    repository.AddressRepository
	store   *store.Store
	logger  *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	session usecase.SessionUsecase,
	repo repository.AddressRepository,
	st *store.Store,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		session: session,
		repo:    repo,
		store:   st,
		logger:  logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddAddress shows the address immediately under a temporary id, then swaps in
// the server record or removes exactly the temporary entry.
func (srv *addressService) AddAddress(ctx context.Context, input usecase.AddAddressInput) (*entity.Address, error) {
	if err := util.ValidateStruct(input); err != nil {
		return nil, err
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.AddressRolledBack{Message: failureMessage(err, msgAddAddressFailed)})

		return nil, err
	}

	tentative := entity.Address{
		ID:           entity.NewTempAddressID(),
		Title:        input.Title,
		Street:       input.Street,
		Neighborhood: input.Neighborhood,
		District:     input.District,
		Province:     input.Province,
		Country:      input.Country,
		PostalCode:   input.PostalCode,
		ApartmentNo:  input.ApartmentNo,
		DoorNo:       input.DoorNo,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Status:       entity.OptimisticPending,
	}

	previousSelected := srv.store.State().Address.SelectedAddressID
	srv.store.Dispatch(store.AddressAdded{Address: tentative})
	srv.log(ctx).Debug("Address added optimistically", slog.String("temp_id", tentative.ID))

	confirmed, err := srv.repo.AddAddress(ctx, token, tentative)
	if err != nil {
		message := failureMessage(err, msgAddAddressFailed)
		srv.store.Dispatch(store.AddressRolledBack{
			TempID:             tentative.ID,
			PreviousSelectedID: previousSelected,
			Message:            message,
		})
		srv.log(ctx).Error("Failed to add address, rolled back",
			slog.String("temp_id", tentative.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to add address")
	}

	confirmed.Status = entity.OptimisticConfirmed
	srv.store.Dispatch(store.AddressConfirmed{TempID: tentative.ID, Address: *confirmed})
	srv.log(ctx).Info("Address confirmed", slog.String("address_id", confirmed.ID))

	return confirmed, nil
}

// RemoveAddress deletes a saved address. Tentative addresses cannot be removed
// until they are confirmed.
func (srv *addressService) RemoveAddress(ctx context.Context, addressID string) error {
	if _, ok := srv.store.State().Address.Address(addressID); !ok || entity.IsTemporary(addressID) {
		return domainerrors.ErrAddressNotFound.WithDetails(addressID)
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.AddressRemoveRejected{
			ID:      addressID,
			Message: failureMessage(err, msgRemoveAddressFailed),
		})

		return err
	}

	srv.store.Dispatch(store.AddressRemovePending{ID: addressID})

	if err := srv.repo.RemoveAddress(ctx, token, addressID); err != nil {
		srv.store.Dispatch(store.AddressRemoveRejected{
			ID:      addressID,
			Message: failureMessage(err, msgRemoveAddressFailed),
		})
		srv.log(ctx).Error("Failed to remove address", slog.String("address_id", addressID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove address")
	}

	srv.store.Dispatch(store.AddressRemoved{ID: addressID})
	srv.log(ctx).Info("Address removed", slog.String("address_id", addressID))

	return nil
}

// SelectAddress changes the active address. An empty id clears the selection.
func (srv *addressService) SelectAddress(addressID string) error {
	if addressID != "" {
		if _, ok := srv.store.State().Address.Address(addressID); !ok {
			return domainerrors.ErrAddressNotFound.WithDetails(addressID)
		}
	}
	srv.store.Dispatch(store.AddressSelected{ID: addressID})

	return nil
}

// SetSearchRadius updates the radius used by proximity fetches.
func (srv *addressService) SetSearchRadius(radiusKm float64) error {
	if radiusKm <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("radius must be greater than 0")
	}
	srv.store.Dispatch(store.SearchRadiusSet{RadiusKm: radiusKm})

	return nil
}
