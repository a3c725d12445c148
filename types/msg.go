package types

import (
	"encoding/base64"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	shared "github.com/filecoin-project/venus/venus-shared/types"
	"golang.org/x/xerrors"
)

// MessageObj is the wallet facing representation of a chain message, amounts
// are decimal attoFIL strings.
type MessageObj struct {
	Version    uint64 `json:"version"`
	To         string `json:"to"`
	From       string `json:"from"`
	Nonce      uint64 `json:"nonce"`
	Value      string `json:"value"`
	GasLimit   int64  `json:"gaslimit"`
	GasFeeCap  string `json:"gasfeecap"`
	GasPremium string `json:"gaspremium"`
	Method     uint64 `json:"method"`
	Params     string `json:"params"`
}

func FromMessage(msg *shared.Message) MessageObj {
	return MessageObj{
		Version:    msg.Version,
		To:         msg.To.String(),
		From:       msg.From.String(),
		Nonce:      msg.Nonce,
		Value:      amountString(msg.Value),
		GasLimit:   msg.GasLimit,
		GasFeeCap:  amountString(msg.GasFeeCap),
		GasPremium: amountString(msg.GasPremium),
		Method:     uint64(msg.Method),
		Params:     base64.StdEncoding.EncodeToString(msg.Params),
	}
}

// Message converts the record back to a chain message.
func (m MessageObj) Message() (*shared.Message, error) {
	to, err := address.NewFromString(m.To)
	if err != nil {
		return nil, xerrors.Errorf("invalid to address %s: %w", m.To, err)
	}
	from, err := address.NewFromString(m.From)
	if err != nil {
		return nil, xerrors.Errorf("invalid from address %s: %w", m.From, err)
	}
	value, err := parseAmount(m.Value)
	if err != nil {
		return nil, xerrors.Errorf("invalid value: %w", err)
	}
	feeCap, err := parseAmount(m.GasFeeCap)
	if err != nil {
		return nil, xerrors.Errorf("invalid gasfeecap: %w", err)
	}
	premium, err := parseAmount(m.GasPremium)
	if err != nil {
		return nil, xerrors.Errorf("invalid gaspremium: %w", err)
	}
	params, err := base64.StdEncoding.DecodeString(m.Params)
	if err != nil {
		return nil, xerrors.Errorf("invalid params: %w", err)
	}

	return &shared.Message{
		Version:    m.Version,
		To:         to,
		From:       from,
		Nonce:      m.Nonce,
		Value:      value,
		GasLimit:   m.GasLimit,
		GasFeeCap:  feeCap,
		GasPremium: premium,
		Method:     abi.MethodNum(m.Method),
		Params:     params,
	}, nil
}

func amountString(v big.Int) string {
	if v.Int == nil {
		return "0"
	}
	return v.String()
}

func parseAmount(s string) (big.Int, error) {
	if len(s) == 0 {
		return big.Zero(), nil
	}
	return big.FromString(s)
}
