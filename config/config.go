// Package config loads the network configuration the quoter and chain reader
// are constructed with. Everything is explicit; there is no package-level
// mutable network selection.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ectoswap/ectoswap-go/amm"
)

// PoolEntry is one registered trading pair.
type PoolEntry struct {
	Pair        string `yaml:"pair"`
	ObjectID    string `yaml:"object_id"`
	TypeTagA    string `yaml:"type_tag_a"`
	TypeTagB    string `yaml:"type_tag_b"`
	DecimalsA   uint8  `yaml:"decimals_a"`
	DecimalsB   uint8  `yaml:"decimals_b"`
	TradeFeeBps uint64 `yaml:"trade_fee_bps"`
}

// Config is the full client configuration for one network.
type Config struct {
	Network            string      `yaml:"network"`
	RPCEndpoint        string      `yaml:"rpc_endpoint"`
	PackageID          string      `yaml:"package_id"`
	DefaultSlippageBps uint64      `yaml:"default_slippage_bps"`
	QuoteDebounceMs    int         `yaml:"quote_debounce_ms"`
	QuoteMaxAgeMs      int         `yaml:"quote_max_age_ms"`
	Pools              []PoolEntry `yaml:"pools"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the client cannot run without.
func (c *Config) Validate() error {
	if c.RPCEndpoint == "" {
		return fmt.Errorf("rpc_endpoint is required")
	}
	if c.PackageID == "" {
		return fmt.Errorf("package_id is required")
	}
	if c.DefaultSlippageBps >= 10_000 {
		return fmt.Errorf("default_slippage_bps must be below 10000")
	}

	seen := make(map[string]struct{}, len(c.Pools))
	for i, p := range c.Pools {
		if p.Pair == "" || p.ObjectID == "" {
			return fmt.Errorf("pool %d: pair and object_id are required", i)
		}
		if p.TypeTagA == "" || p.TypeTagB == "" {
			return fmt.Errorf("pool %q: both type tags are required", p.Pair)
		}
		if _, dup := seen[p.Pair]; dup {
			return fmt.Errorf("pool %q: duplicate pair", p.Pair)
		}
		seen[p.Pair] = struct{}{}
	}
	return nil
}

// Pool looks up a registered pair and converts it to the amm registry type.
func (c *Config) Pool(pair string) (amm.Pool, bool) {
	for _, p := range c.Pools {
		if p.Pair == pair {
			return amm.Pool{
				Pair:        p.Pair,
				ObjectID:    p.ObjectID,
				TypeTagA:    p.TypeTagA,
				TypeTagB:    p.TypeTagB,
				DecimalsA:   p.DecimalsA,
				DecimalsB:   p.DecimalsB,
				TradeFeeBps: p.TradeFeeBps,
			}, true
		}
	}
	return amm.Pool{}, false
}

// QuoteDebounce returns the configured debounce, defaulting to 300ms.
func (c *Config) QuoteDebounce() time.Duration {
	if c.QuoteDebounceMs <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.QuoteDebounceMs) * time.Millisecond
}

// QuoteMaxAge returns the configured quote freshness bound, defaulting to
// amm.DefaultQuoteMaxAge.
func (c *Config) QuoteMaxAge() time.Duration {
	if c.QuoteMaxAgeMs <= 0 {
		return amm.DefaultQuoteMaxAge
	}
	return time.Duration(c.QuoteMaxAgeMs) * time.Millisecond
}
