package ectoswap

import (
	"github.com/ectoswap/ectoswap-go/amm"
	"github.com/ectoswap/ectoswap-go/config"
	"github.com/ectoswap/ectoswap-go/sui"
)

// NewQuoter creates a new swap quoter.
//
// Example:
//
// client := NewSuiClient(cfg.RPCEndpoint, nil)
//
// quoter := NewQuoter(client, amm.DefaultQuoterConfig(), nil)
//
// quoter.Request(ctx, amm.QuoteRequest{Pool: pool, AmountIn: "0.01", SlippageBps: 50})
var NewQuoter = amm.NewQuoter

// NewSuiClient creates the JSON-RPC reserve reader.
//
// Example:
//
// client := NewSuiClient("https://fullnode.mainnet.sui.io", logger)
//
// reserves, _ := client.GetReserves(ctx, pool.ObjectID)
var NewSuiClient = sui.NewClient

// LoadConfig loads and validates the YAML network configuration.
var LoadConfig = config.Load
