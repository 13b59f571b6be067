package main

import (
	"context"

	"ami-promoter/promoter"
	"ami-promoter/promoter/common"
)

type promoterInterface interface {
	Promote(ctx context.Context) (common.Result, error)
}

// newPromoter builds fresh region clients for every invocation; tests
// replace it.
var newPromoter = func(ctx context.Context, cfg common.Config) (promoterInterface, error) {
	p, err := promoter.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return p, nil
}
