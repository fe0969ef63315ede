// Package api implements the remote repositories on top of the gateway.
package api

import (
	"context"
	"strconv"

	"freshdeal/internal/infra/gateway"
)

// Requester performs one backend call. *gateway.Client implements it.
type Requester interface {
	Do(ctx context.Context, req gateway.Request, out any) error
}

func idPath(prefix string, id int64, suffix ...string) string {
	path := prefix + "/" + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		path += "/" + s
	}

	return path
}
