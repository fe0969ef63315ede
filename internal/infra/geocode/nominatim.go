// Package geocode resolves map pins into postal addresses.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"freshdeal/config"
	"freshdeal/internal/domain/entity"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/infra/gateway"

	"github.com/paulmach/orb"
	"github.com/tidwall/gjson"
)

const reversePath = "/reverse"

type requester interface {
	Do(ctx context.Context, req gateway.Request, out any) error
}

// Nominatim reverse geocodes through a Nominatim compatible service.
type Nominatim struct {
	client    requester
	language  string
	userAgent string
}

var _ service.Geocoder = (*Nominatim)(nil)

// New builds the geocoder from configuration. It uses its own gateway client
// so that lookups do not show up as backend calls.
func New(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	client := gateway.NewClient(cfg.Geocoder.BaseURL, logger.With(slog.String("component", "geocoder")),
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.Geocoder.Timeout}),
	)

	return NewNominatim(client, cfg.Geocoder.Language, cfg.Geocoder.UserAgent)
}

// NewNominatim creates a geocoder on top of client.
func NewNominatim(client requester, language, userAgent string) *Nominatim {
	return &Nominatim{client: client, language: language, userAgent: userAgent}
}

func (n *Nominatim) Reverse(ctx context.Context, point orb.Point) (*entity.Address, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("addressdetails", "1")
	query.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lon(), 'f', -1, 64))

	header := http.Header{}
	if n.userAgent != "" {
		header.Set("User-Agent", n.userAgent)
	}
	if n.language != "" {
		header.Set("Accept-Language", n.language)
	}

	var raw json.RawMessage
	err := n.client.Do(ctx, gateway.Request{
		Operation: "reverse_geocode",
		Method:    http.MethodGet,
		Path:      reversePath,
		Query:     query,
		Header:    header,
	}, &raw)
	if err != nil {
		return nil, err
	}

	return parseReverse(raw)
}

// parseReverse maps a jsonv2 reverse response. Nominatim answers 200 with an
// "error" field when nothing is found at the point.
func parseReverse(body []byte) (*entity.Address, error) {
	if msg := gjson.GetBytes(body, "error"); msg.Exists() {
		return nil, domainerrors.ErrAddressNotFound.WithDetails(msg.String())
	}

	addr := gjson.GetBytes(body, "address")
	if !addr.Exists() {
		return nil, domainerrors.ErrAddressNotFound
	}

	return &entity.Address{
		Street:       joinNonEmpty(first(addr, "road", "pedestrian", "footway"), addr.Get("house_number").String()),
		Neighborhood: first(addr, "neighbourhood", "suburb", "quarter"),
		District:     first(addr, "town", "city_district", "county", "district"),
		Province:     first(addr, "province", "state", "city"),
		Country:      addr.Get("country").String(),
		PostalCode:   addr.Get("postcode").String(),
	}, nil
}

func first(result gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(result.Get(key).String()); v != "" {
			return v
		}
	}

	return ""
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " ")
}
