// Package pool supplies liquidity pool reserves to the quote service. Reserves
// are read-only snapshots; no staleness check is made here.
package pool

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nulln0ne/kadena-quote/pkg/amm"
)

// Reserves are oriented to one swap direction: In backs the token sold, Out
// the token bought.
type Reserves struct {
	In  decimal.Decimal
	Out decimal.Decimal
}

// Source looks up the reserves of the pair trading tokenIn for tokenOut.
type Source interface {
	Reserves(ctx context.Context, tokenIn, tokenOut string) (Reserves, error)
}

// Static always returns the same reserves regardless of the pair.
type Static Reserves

func (s Static) Reserves(_ context.Context, tokenIn, tokenOut string) (Reserves, error) {
	if tokenIn == tokenOut {
		return Reserves{}, ErrSameToken
	}
	return Reserves(s), nil
}

type pairKey struct {
	token0, token1 string
}

type pair struct {
	reserve0, reserve1 decimal.Decimal
}

type pairFile struct {
	Pairs []struct {
		Token0   string `yaml:"token0"`
		Token1   string `yaml:"token1"`
		Reserve0 string `yaml:"reserve0"`
		Reserve1 string `yaml:"reserve1"`
	} `yaml:"pairs"`
}

// FileSource serves reserves from a YAML snapshot. The zero value holds no
// pairs and is ready for Load:
//
//	pairs:
//	  - token0: coin
//	    token1: kaddex.kdx
//	    reserve0: "1520304.118"
//	    reserve1: "20533991.5"
type FileSource struct {
	mu    sync.RWMutex
	pairs map[pairKey]pair
}

func NewFileSource() *FileSource {
	return &FileSource{pairs: make(map[pairKey]pair)}
}

// LoadFileSource reads a snapshot from path.
func LoadFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pools file: %w", err)
	}
	defer f.Close()

	s := NewFileSource()
	if err := s.Load(f); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the current snapshot with the pairs decoded from r.
func (s *FileSource) Load(r io.Reader) error {
	var doc pairFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	pairs := make(map[pairKey]pair, len(doc.Pairs))
	for i, p := range doc.Pairs {
		if p.Token0 == p.Token1 {
			return fmt.Errorf("pair %d (%s): %w", i, p.Token0, ErrSameToken)
		}
		r0, err := amm.ParseAmount(p.Reserve0)
		if err != nil {
			return fmt.Errorf("pair %d reserve0: %w", i, err)
		}
		r1, err := amm.ParseAmount(p.Reserve1)
		if err != nil {
			return fmt.Errorf("pair %d reserve1: %w", i, err)
		}

		key := pairKey{p.Token0, p.Token1}
		_, dup := pairs[key]
		_, dupRev := pairs[pairKey{p.Token1, p.Token0}]
		if dup || dupRev {
			return fmt.Errorf("%s/%s: %w", p.Token0, p.Token1, ErrDuplicatePair)
		}
		pairs[key] = pair{reserve0: r0, reserve1: r1}
	}

	s.mu.Lock()
	s.pairs = pairs
	s.mu.Unlock()
	return nil
}

func (s *FileSource) Reserves(ctx context.Context, tokenIn, tokenOut string) (Reserves, error) {
	if err := ctx.Err(); err != nil {
		return Reserves{}, err
	}
	if tokenIn == tokenOut {
		return Reserves{}, ErrSameToken
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.pairs[pairKey{tokenIn, tokenOut}]; ok {
		return Reserves{In: p.reserve0, Out: p.reserve1}, nil
	}
	if p, ok := s.pairs[pairKey{tokenOut, tokenIn}]; ok {
		return Reserves{In: p.reserve1, Out: p.reserve0}, nil
	}
	return Reserves{}, fmt.Errorf("%s/%s: %w", tokenIn, tokenOut, ErrPairNotFound)
}
