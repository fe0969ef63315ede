package impl

import (
	"context"
	"log/slog"
	"strings"

	"freshdeal/config"
	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	session usecase.SessionUsecase
	repo    repository.PurchaseRepository
	qrcode  service.QRCodeService
	store   *store.Store
	perPage int
	logger  *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(
	session usecase.SessionUsecase,
	repo repository.PurchaseRepository,
	qrcode service.QRCodeService,
	st *store.Store,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PurchaseUsecase {
	return &purchaseService{
		session: session,
		repo:    repo,
		qrcode:  qrcode,
		store:   st,
		perPage: cfg.Search.PreviousOrdersPerPage,
		logger:  logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places the server-side cart. Delivery orders ship to the selected address.
func (srv *purchaseService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) ([]entity.Purchase, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.OrderRejected{Message: failureMessage(err, msgCreateOrderFailed)})

		return nil, err
	}

	request := repository.OrderRequest{IsDelivery: input.IsDelivery}
	if input.IsDelivery {
		selected, ok := srv.store.State().Address.Selected()
		if !ok {
			return nil, domainerrors.ErrSelectedAddressMissing
		}
		request.DeliveryAddress = SerializeDeliveryAddress(selected)
		request.DeliveryNotes = input.Notes
	} else {
		request.PickupNotes = input.Notes
	}

	srv.store.Dispatch(store.OrderPending{})

	purchases, err := srv.repo.CreateOrder(ctx, token, request)
	if err != nil {
		srv.store.Dispatch(store.OrderRejected{Message: failureMessage(err, msgCreateOrderFailed)})
		srv.log(ctx).Error("Failed to create order", slog.Bool("is_delivery", input.IsDelivery), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.store.Dispatch(store.OrderCreated{Purchases: purchases})
	srv.log(ctx).Info("Order created", slog.Int("purchases", len(purchases)), slog.Bool("is_delivery", input.IsDelivery))

	return purchases, nil
}

// SerializeDeliveryAddress renders an address on one line as the backend expects it.
func SerializeDeliveryAddress(address entity.Address) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{address.Street, address.Neighborhood, address.Country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if address.ApartmentNo != "" {
		parts = append(parts, "Apt: "+address.ApartmentNo)
	}
	if address.DoorNo != "" {
		parts = append(parts, "Door: "+address.DoorNo)
	}

	return strings.Join(parts, " ")
}

func (srv *purchaseService) FetchActiveOrders(ctx context.Context) ([]entity.Purchase, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.ActiveOrdersRejected{Message: failureMessage(err, msgActiveOrdersFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.ActiveOrdersPending{})

	purchases, err := srv.repo.FetchActive(ctx, token)
	if err != nil {
		srv.store.Dispatch(store.ActiveOrdersRejected{Message: failureMessage(err, msgActiveOrdersFailed)})
		srv.log(ctx).Error("Failed to fetch active orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch active orders")
	}

	srv.store.Dispatch(store.ActiveOrdersFulfilled{Purchases: purchases})

	return purchases, nil
}

// FetchPreviousOrders loads one page. Page 1 replaces the list, later pages append.
func (srv *purchaseService) FetchPreviousOrders(ctx context.Context, page int) ([]entity.Purchase, error) {
	if page < 1 {
		page = 1
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.PreviousOrdersRejected{Message: failureMessage(err, msgPreviousOrdersFailed)})

		return nil, err
	}

	srv.store.Dispatch(store.PreviousOrdersPending{Page: page})

	result, err := srv.repo.FetchPrevious(ctx, token, page, srv.perPage)
	if err != nil {
		srv.store.Dispatch(store.PreviousOrdersRejected{Message: failureMessage(err, msgPreviousOrdersFailed)})
		srv.log(ctx).Error("Failed to fetch previous orders", slog.Int("page", page), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch previous orders")
	}
	if result.Page == 0 {
		result.Page = page
	}

	srv.store.Dispatch(store.PreviousOrdersFulfilled{Page: *result})

	return result.Purchases, nil
}

func (srv *purchaseService) FetchOrderDetail(ctx context.Context, purchaseID int64) (*entity.Purchase, error) {
	srv.store.Dispatch(store.OrderDetailPending{PurchaseID: purchaseID})

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		srv.store.Dispatch(store.OrderDetailRejected{
			PurchaseID: purchaseID,
			Message:    failureMessage(err, msgOrderDetailFailed),
		})

		return nil, err
	}

	purchase, err := srv.repo.FetchDetail(ctx, token, purchaseID)
	if err != nil {
		srv.store.Dispatch(store.OrderDetailRejected{
			PurchaseID: purchaseID,
			Message:    failureMessage(err, msgOrderDetailFailed),
		})
		srv.log(ctx).Error("Failed to fetch order details", slog.Int64("purchase_id", purchaseID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch order details")
	}

	srv.store.Dispatch(store.OrderDetailFulfilled{Purchase: *purchase})

	return purchase, nil
}

func (srv *purchaseService) RespondToOrder(ctx context.Context, purchaseID int64, decision entity.Decision) (*entity.Purchase, error) {
	if decision != entity.DecisionAccept && decision != entity.DecisionReject {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decision must be accept or reject")
	}

	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return nil, err
	}

	purchase, err := srv.repo.Respond(ctx, token, purchaseID, decision)
	if err != nil {
		srv.log(ctx).Error("Failed to respond to order",
			slog.Int64("purchase_id", purchaseID),
			slog.String("decision", string(decision)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to respond to order")
	}

	srv.store.Dispatch(store.OrderResponded{Purchase: *purchase})
	srv.log(ctx).Info("Order responded", slog.Int64("purchase_id", purchaseID), slog.String("status", string(purchase.Status)))

	return purchase, nil
}

func (srv *purchaseService) HasRating(ctx context.Context, purchaseID int64) (bool, error) {
	token, err := srv.session.RequireToken(ctx)
	if err != nil {
		return false, err
	}

	rated, err := srv.repo.HasRating(ctx, token, purchaseID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check rating")
	}

	return rated, nil
}

// PickupCode renders the QR code shown at the counter for an accepted pickup order.
func (srv *purchaseService) PickupCode(ctx context.Context, purchaseID int64) ([]byte, error) {
	purchase, err := srv.FetchOrderDetail(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase.IsDelivery || purchase.Status != entity.PurchaseAccepted {
		return nil, domainerrors.ErrPickupCodeUnavailable
	}

	code, err := srv.qrcode.GeneratePickupQR(*purchase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}

	return code, nil
}
