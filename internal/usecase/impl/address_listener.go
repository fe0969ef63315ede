package impl

import (
	"context"
	"log/slog"

	"freshdeal/config"
	"freshdeal/internal/domain/entity"
	"freshdeal/internal/store"
	"freshdeal/internal/usecase"

	"go.uber.org/fx"
)

const proximityFetchTask = "proximityFetch"

// AddressListenerParams holds dependencies of the address-selection listener.
type AddressListenerParams struct {
	fx.In
	fx.Lifecycle

	Store       *store.Store
	Queue       *store.TaskQueue
	Restaurants usecase.RestaurantUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// RegisterAddressListener subscribes the proximity refetch to address
// selection changes for the lifetime of the application.
func RegisterAddressListener(params AddressListenerParams) {
	listener := NewAddressListener(params.Restaurants, params.Queue, params.Config.Search.DefaultRadiusKm, params.Logger)

	var unsubscribe func()
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			unsubscribe = params.Store.Subscribe(listener.OnTransition)

			return nil
		},
		OnStop: func(context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}

			return nil
		},
	})
}

// AddressListener enqueues a proximity fetch whenever the selected address changes.
type AddressListener struct {
	restaurants   usecase.RestaurantUsecase
	queue         *store.TaskQueue
	defaultRadius float64
	logger        *slog.Logger
}

// NewAddressListener creates the listener. Subscribe OnTransition to a store to activate it.
func NewAddressListener(
	restaurants usecase.RestaurantUsecase,
	queue *store.TaskQueue,
	defaultRadiusKm float64,
	logger *slog.Logger,
) *AddressListener {
	return &AddressListener{
		restaurants:   restaurants,
		queue:         queue,
		defaultRadius: defaultRadiusKm,
		logger:        logger,
	}
}

// OnTransition is a store.Listener.
func (l *AddressListener) OnTransition(prev, next store.State, _ store.Action) {
	if prev.Address.SelectedAddressID == next.Address.SelectedAddressID {
		return
	}

	selected, ok := next.Address.Selected()
	if !ok {
		return
	}

	// A confirmed address replacing its tentative copy is the same place.
	if previous, had := prev.Address.Selected(); had && entity.IsTemporary(previous.ID) && previous.SameLocation(selected) {
		return
	}

	radius := next.Address.SearchRadiusKm
	if radius <= 0 {
		radius = l.defaultRadius
	}
	input := usecase.ProximityInput{
		Latitude:  selected.Latitude,
		Longitude: selected.Longitude,
		RadiusKm:  radius,
	}
	addressID := selected.ID

	l.queue.Enqueue(store.Task{
		Name: proximityFetchTask,
		Run: func(ctx context.Context) {
			restaurants, err := l.restaurants.FetchByProximity(ctx, input)
			if err != nil {
				l.logger.Error("Proximity refetch after address change failed",
					slog.String("address_id", addressID),
					slog.Any("error", err),
				)

				return
			}
			l.logger.Info("Proximity refetch after address change",
				slog.String("address_id", addressID),
				slog.Int("count", len(restaurants)),
			)
		},
	})
}
