// Package sui reads pool and coin state over the Sui JSON-RPC interface.
// It is the live implementation of amm.ReserveReader; nothing here signs or
// submits transactions.
package sui

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/ectoswap/ectoswap-go/amm"
)

// Client is a thin JSON-RPC client over HTTP.
type Client struct {
	http  *resty.Client
	group singleflight.Group
	log   *logrus.Entry
}

// NewClient targets one fullnode endpoint.
func NewClient(endpoint string, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(endpoint).
			SetHeader("Content-Type", "application/json").
			SetTimeout(10 * time.Second),
		log: log.WithField("component", "sui"),
	}
}

type rpcRequest struct {
	JsonRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

func (c *Client) call(ctx context.Context, method string, params ...any) (gjson.Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(rpcRequest{JsonRPC: "2.0", ID: 1, Method: method, Params: params}).
		Post("")
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s: %w", method, err)
	}
	if resp.IsError() {
		return gjson.Result{}, fmt.Errorf("%s: http %d", method, resp.StatusCode())
	}

	body := gjson.ParseBytes(resp.Body())
	if rpcErr := body.Get("error"); rpcErr.Exists() {
		return gjson.Result{}, fmt.Errorf("%s: rpc error %s: %s",
			method, rpcErr.Get("code").String(), rpcErr.Get("message").String())
	}
	return body.Get("result"), nil
}

// GetReserves fetches one pool object and extracts its reserve snapshot.
// Concurrent calls for the same pool are collapsed into a single RPC
// round-trip; every caller gets its own copy of the snapshot.
func (c *Client) GetReserves(ctx context.Context, poolID string) (*amm.PoolReserves, error) {
	v, err, _ := c.group.Do(poolID, func() (any, error) {
		return c.fetchReserves(ctx, poolID)
	})
	if err != nil {
		return nil, err
	}

	r := v.(*amm.PoolReserves)
	return &amm.PoolReserves{
		ReserveA:    new(big.Int).Set(r.ReserveA),
		ReserveB:    new(big.Int).Set(r.ReserveB),
		LpSupply:    new(big.Int).Set(r.LpSupply),
		TradeFeeBps: r.TradeFeeBps,
		FetchedAt:   r.FetchedAt,
	}, nil
}

func (c *Client) fetchReserves(ctx context.Context, poolID string) (*amm.PoolReserves, error) {
	result, err := c.call(ctx, "sui_getObject", poolID, map[string]bool{"showContent": true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", amm.ErrReadFailed, err)
	}

	if objErr := result.Get("error"); objErr.Exists() {
		if objErr.Get("code").String() == "notExists" {
			return nil, fmt.Errorf("%w: %s", amm.ErrPairNotFound, poolID)
		}
		return nil, fmt.Errorf("%w: object error %s", amm.ErrReadFailed, objErr.Get("code").String())
	}

	fields := result.Get("data.content.fields")
	if !fields.Exists() {
		return nil, fmt.Errorf("%w: pool %s has no content", amm.ErrReadFailed, poolID)
	}

	reserveA, err := parseRawUint(fields.Get("reserve_a"))
	if err != nil {
		return nil, fmt.Errorf("%w: reserve_a: %v", amm.ErrReadFailed, err)
	}
	reserveB, err := parseRawUint(fields.Get("reserve_b"))
	if err != nil {
		return nil, fmt.Errorf("%w: reserve_b: %v", amm.ErrReadFailed, err)
	}
	lpSupply, err := parseRawUint(fields.Get("lp_supply.fields.value"))
	if err != nil {
		return nil, fmt.Errorf("%w: lp_supply: %v", amm.ErrReadFailed, err)
	}

	feeBps := fields.Get("fee_bps").Uint()

	c.log.WithFields(logrus.Fields{
		"pool":      poolID,
		"reserve_a": reserveA.String(),
		"reserve_b": reserveB.String(),
	}).Debug("fetched pool reserves")

	return &amm.PoolReserves{
		ReserveA:    reserveA,
		ReserveB:    reserveB,
		LpSupply:    lpSupply,
		TradeFeeBps: feeBps,
		FetchedAt:   time.Now(),
	}, nil
}

// parseRawUint accepts the string-encoded u64/u128 values Sui returns for
// Move integer fields.
func parseRawUint(v gjson.Result) (*big.Int, error) {
	if !v.Exists() {
		return nil, fmt.Errorf("field missing")
	}
	raw, ok := new(big.Int).SetString(v.String(), 10)
	if !ok || raw.Sign() < 0 {
		return nil, fmt.Errorf("not a raw amount: %q", v.String())
	}
	return raw, nil
}
