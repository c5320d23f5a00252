package ports

import "context"

type HealthPort interface {
	// An empty service asks about the server as a whole.
	Check(ctx context.Context, service string) (healthy bool, msg string)
}
