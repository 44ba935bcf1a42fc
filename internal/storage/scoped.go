package storage

import "context"

// Scoped prefixes every key with a namespace, giving each visitor session
// its own set of keys on a shared backend.
func Scoped(s Store, namespace string) Store {
	return &scopedStore{inner: s, prefix: namespace + ":"}
}

type scopedStore struct {
	inner  Store
	prefix string
}

func (s *scopedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scopedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}
