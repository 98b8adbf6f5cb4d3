package interfaces

import (
	"context"
	"net/url"
)

// INavigator writes the report link without appending a history entry.
type INavigator interface {
	Replace(ctx context.Context, query url.Values) error
}
