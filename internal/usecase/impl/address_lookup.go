package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"freshdeal/internal/domain/entity"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/usecase"
	"freshdeal/internal/util"

	"github.com/paulmach/orb"
)

// DraftFunc receives the address resolved for the last pin position.
type DraftFunc func(draft *entity.Address, err error)

// addressLookup implements the AddressLookup interface.
type addressLookup struct {
	geocoder  service.Geocoder
	debouncer *util.Debouncer
	onDraft   DraftFunc
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex // serializes geocoder calls
}

// NewAddressLookup creates a lookup that geocodes a dragged pin once it rests for window.
func NewAddressLookup(
	geocoder service.Geocoder,
	window time.Duration,
	onDraft DraftFunc,
	logger *slog.Logger,
) usecase.AddressLookup {
	ctx, cancel := context.WithCancel(context.Background())

	return &addressLookup{
		geocoder:  geocoder,
		debouncer: util.NewDebouncer(window),
		onDraft:   onDraft,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (l *addressLookup) Drag(point orb.Point) {
	l.debouncer.Trigger(func() {
		l.resolve(point)
	})
}

// Close drops the pending lookup and aborts the one in flight.
func (l *addressLookup) Close() {
	l.debouncer.Close()
	l.cancel()
}

func (l *addressLookup) resolve(point orb.Point) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ctx.Err() != nil {
		return
	}

	draft, err := l.geocoder.Reverse(l.ctx, point)
	if l.ctx.Err() != nil {
		return
	}
	if err != nil {
		l.logger.Warn("Reverse geocoding failed", slog.Float64("lat", point.Lat()), slog.Float64("lon", point.Lon()), slog.Any("error", err))
	} else {
		draft.Latitude = point.Lat()
		draft.Longitude = point.Lon()
	}

	l.onDraft(draft, err)
}
