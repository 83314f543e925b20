package core

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/spf13/cast"
)

// TokenID nft token id, proxies render it either as a string or a number
type TokenID string

// UnmarshalJSON accepts both "7" and 7
func (t *TokenID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	if n, ok := v.(json.Number); ok {
		*t = TokenID(n.String())
		return nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return err
	}

	*t = TokenID(s)
	return nil
}

// NFTContract nft contract metadata
type NFTContract struct {
	Address string `json:"address,omitempty"`
	Name    string `json:"name,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
}

// NFT owned nft metadata
type NFT struct {
	Contract *NFTContract `json:"contract,omitempty"`
	TokenID  TokenID      `json:"tokenId,omitempty"`
}

// ContractAddress contract address or empty
func (n *NFT) ContractAddress() string {
	if n == nil || n.Contract == nil {
		return ""
	}

	return n.Contract.Address
}

// ContractName contract name or empty
func (n *NFT) ContractName() string {
	if n == nil || n.Contract == nil {
		return ""
	}

	return n.Contract.Name
}

// ContractSymbol contract symbol or empty
func (n *NFT) ContractSymbol() string {
	if n == nil || n.Contract == nil {
		return ""
	}

	return n.Contract.Symbol
}

// INFTService nft metadata fetcher interface
type INFTService interface {
	Owned(ctx context.Context) ([]*NFT, error)
}
