// Package tokens provides the static token registry: per-token precision and
// burn-fee flags keyed by Pact module name.
package tokens

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nulln0ne/kadena-quote/pkg/amm"
)

// CoinCode is the native KDA token module.
const CoinCode = "coin"

// fallbackNetwork is consulted when the file has no section for the
// configured network.
const fallbackNetwork = "mainnet"

//go:embed tokens.yml
var defaultTokens []byte

type Token struct {
	Code      string `yaml:"-"`
	Symbol    string `yaml:"symbol"`
	Name      string `yaml:"name"`
	Precision *int   `yaml:"precision"`
	Burn      bool   `yaml:"burn"`
}

// Registry maps token codes to their metadata. It is read-only after Load and
// safe for concurrent use.
type Registry struct {
	tokens map[string]Token
}

// Load reads a YAML document keyed by network id, e.g.
//
//	mainnet01:
//	  coin: {symbol: KDA, precision: 12}
func Load(r io.Reader, network string) (*Registry, error) {
	var doc map[string]map[string]Token
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	section, ok := doc[strings.ToLower(network)]
	if !ok {
		section, ok = doc[fallbackNetwork]
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", network, ErrNoTokens)
	}

	reg := &Registry{tokens: make(map[string]Token, len(section))}
	for code, tok := range section {
		if tok.Precision != nil && (*tok.Precision < 0 || *tok.Precision > amm.MaxPrecision) {
			return nil, fmt.Errorf("token %s precision %d: %w", code, *tok.Precision, ErrInvalidPrecision)
		}
		tok.Code = code
		reg.tokens[code] = tok
	}
	return reg, nil
}

// LoadFile is Load over a file path.
func LoadFile(path, network string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tokens file: %w", err)
	}
	defer f.Close()
	return Load(f, network)
}

// Default returns the built-in registry for network.
func Default(network string) (*Registry, error) {
	return Load(bytes.NewReader(defaultTokens), network)
}

// Lookup returns the metadata declared for code.
func (r *Registry) Lookup(code string) (Token, bool) {
	tok, ok := r.tokens[code]
	return tok, ok
}

// Precision returns the declared precision of code, or amm.DefaultPrecision
// when the token is unknown or declares none.
func (r *Registry) Precision(code string) int {
	if code == "" {
		return amm.DefaultPrecision
	}
	tok, ok := r.tokens[code]
	if !ok || tok.Precision == nil {
		return amm.DefaultPrecision
	}
	return *tok.Precision
}

// IsBurnToken reports whether transfers of code carry a burn fee. The native
// coin never does.
func (r *Registry) IsBurnToken(code string) bool {
	if code == CoinCode {
		return false
	}
	return r.tokens[code].Burn
}
