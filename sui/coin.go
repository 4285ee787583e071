package sui

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

// CoinMetadata is the on-chain display metadata for one coin type.
type CoinMetadata struct {
	CoinType string
	Symbol   string
	Name     string
	Decimals uint8
}

// GetCoinMetadata fetches decimals and naming for one coin type.
func (c *Client) GetCoinMetadata(ctx context.Context, coinType string) (*CoinMetadata, error) {
	result, err := c.call(ctx, "suix_getCoinMetadata", coinType)
	if err != nil {
		return nil, err
	}
	if !result.Exists() || result.Type == gjson.Null {
		return nil, fmt.Errorf("no metadata for coin type %s", coinType)
	}

	return &CoinMetadata{
		CoinType: coinType,
		Symbol:   result.Get("symbol").String(),
		Name:     result.Get("name").String(),
		Decimals: uint8(result.Get("decimals").Uint()),
	}, nil
}

// GetPairMetadata fetches both coins of a pair concurrently.
func (c *Client) GetPairMetadata(ctx context.Context, typeA, typeB string) (*CoinMetadata, *CoinMetadata, error) {
	var metaA, metaB *CoinMetadata

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metaA, err = c.GetCoinMetadata(ctx, typeA)
		return err
	})
	g.Go(func() error {
		var err error
		metaB, err = c.GetCoinMetadata(ctx, typeB)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return metaA, metaB, nil
}
