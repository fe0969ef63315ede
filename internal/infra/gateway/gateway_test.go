package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewClient(server.URL+"/", logger, opts...), logs
}

func TestClient_Do_InjectsBearerAndDecodes(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/restaurants/proximity", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]float64
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 10.0, body["radius"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"restaurants":[{"id":7}]}`))
	})

	var out struct {
		Restaurants []struct {
			ID int64 `json:"id"`
		} `json:"restaurants"`
	}
	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/restaurants/proximity",
		Body:   map[string]float64{"latitude": 41, "longitude": 29, "radius": 10},
		Token:  " secret-token ",
	}, &out)

	require.NoError(t, err)
	require.Len(t, out.Restaurants, 1)
	assert.Equal(t, int64(7), out.Restaurants[0].ID)
	assert.Contains(t, logs.String(), `"operation":"proximity"`)
	assert.Contains(t, logs.String(), "Request succeeded")
	assert.NotContains(t, logs.String(), "secret-token")
}

func TestClient_Do_ServerMessageIsSurfaced(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Listing is no longer available"}`))
	})

	err := client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/cart"}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrServerRejection))
	assert.Equal(t, domainerrors.KindServerRejection, domainerrors.KindOf(err))
	assert.Equal(t, "Listing is no longer available", domainerrors.MessageOf(err, "fallback"))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestClient_Do_FallbackMessageWithoutPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/user/data"}, nil)

	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrServerRejection.Message(), domainerrors.MessageOf(err, "fallback"))
}

func TestClient_Do_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/cart"}, nil)

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindNetworkFailure, domainerrors.KindOf(err))
}

func TestClient_Do_Timeout(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	defer close(release)

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/purchase/active"}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestTimeout))
	assert.Equal(t, domainerrors.KindNetworkFailure, domainerrors.KindOf(err))
}

func TestClient_Do_MultipartAndQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "Green Bowl", r.FormValue("restaurantName"))
		assert.Equal(t, []string{"Mon", "Tue"}, r.MultipartForm.Value["workingDays"])

		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "logo.png", header.Filename)
		assert.Equal(t, []byte("png-bytes"), content)

		w.WriteHeader(http.StatusCreated)
	})

	form := &MultipartForm{}
	form.Set("restaurantName", "Green Bowl")
	form.Set("workingDays", "Mon", "Tue")
	form.Files = append(form.Files, FilePart{Field: "image", Filename: "logo.png", Content: []byte("png-bytes")})

	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "restaurants",
		Query:  url.Values{"page": []string{"2"}},
		Form:   form,
	}, nil)

	require.NoError(t, err)
}

func TestClient_Do_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cart/reset" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}, WithMetrics(metrics))

	require.NoError(t, client.Do(context.Background(), Request{Operation: "fetchCart", Method: http.MethodGet, Path: "/cart"}, nil))
	require.Error(t, client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/cart/reset"}, nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("fetchCart", outcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("reset", outcomeRejected)))
}

func TestNewMetrics_NilRegistererIsNoop(t *testing.T) {
	metrics := NewMetrics(nil)

	assert.NotPanics(t, func() {
		metrics.observe("fetchCart", outcomeSuccess, time.Second)
	})
}

func TestRequest_OperationFallsBackToLastSegment(t *testing.T) {
	assert.Equal(t, "active", Request{Path: "/purchase/active"}.operation())
	assert.Equal(t, "login", Request{Path: "login"}.operation())
	assert.Equal(t, unknownOperation, Request{Path: "/"}.operation())
	assert.Equal(t, "createOrder", Request{Operation: "createOrder", Path: "/purchase"}.operation())
}
