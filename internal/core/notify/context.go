package notify

import "context"

type storeKey struct{}

// WithStore returns a context that carries s. Each mounted program installs
// exactly one store this way.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store installed by WithStore.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(storeKey{}).(*Store)
	return s, ok && s != nil
}
