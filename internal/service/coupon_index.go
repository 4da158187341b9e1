package service

import (
	"context"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"

	"shopapi/internal/repository"
)

// CouponIndex is an in-memory bloom filter of coupon names. It lets the cart
// reject unknown coupon names without a database round trip. Deleted names
// stay in the filter, which only costs a lookup.
type CouponIndex struct {
	mu     sync.RWMutex
	filter *bloom.BloomFilter
	loaded bool
}

// NewCouponIndex sizes the filter for about n names at a 1% false positive rate.
func NewCouponIndex(n uint) *CouponIndex {
	return &CouponIndex{filter: bloom.NewWithEstimates(n, 0.01)}
}

// Load adds every stored coupon name. Until Load succeeds MayContain always
// returns true.
func (i *CouponIndex) Load(ctx context.Context, repo repository.CouponRepository) error {
	names, err := repo.Names(ctx)
	if err != nil {
		return errors.Wrap(err, "load coupon names")
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, n := range names {
		i.filter.AddString(n)
	}
	i.loaded = true
	return nil
}

func (i *CouponIndex) Add(name string) {
	if i == nil {
		return
	}
	i.mu.Lock()
	i.filter.AddString(name)
	i.mu.Unlock()
}

// MayContain reports false only for names that were never added.
func (i *CouponIndex) MayContain(name string) bool {
	if i == nil {
		return true
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	if !i.loaded {
		return true
	}
	return i.filter.TestString(name)
}
