package service

import (
	"context"
	"errors"

	"github.com/eventhub/account-service/internal/core/domain"
)

// firstInOrder calls find for each variant in order and returns the first
// hit. Not-found results move on to the next variant; any other error stops
// the search.
func firstInOrder(
	ctx context.Context,
	order []domain.Variant,
	find func(ctx context.Context, v domain.Variant) (*domain.Account, error),
) (*domain.Account, error) {
	for _, v := range order {
		acc, err := find(ctx, v)
		if errors.Is(err, domain.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}
