package store

import (
	"fmt"
	"strings"
)

func actionName(action Action) string {
	name := fmt.Sprintf("%T", action)

	return strings.TrimPrefix(name, "store.")
}
