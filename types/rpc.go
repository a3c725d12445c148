package types

import (
	"encoding/json"
)

const (
	MethodGetGasForMessage = "fil_getGasForMessage"
	MethodConfigure        = "fil_configure"
	MethodGetConfig        = "fil_getConfig"
	MethodGetAddress       = "fil_getAddress"
	MethodGetPublicKey     = "fil_getPublicKey"
	MethodGetBalance       = "fil_getBalance"
	MethodGetMessages      = "fil_getMessages"
	MethodSignMessage      = "fil_signMessage"
	MethodSendMessage      = "fil_sendMessage"
)

// SnapRequest is what the host forwards to the snap.
type SnapRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// SnapResponse carries either a result or an error, never both.
type SnapResponse struct {
	Result interface{} `json:"result,omitempty"`
	Error  *SnapError  `json:"error,omitempty"`
}

type SnapError struct {
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func NewResult(result interface{}) *SnapResponse {
	return &SnapResponse{Result: result}
}

func (r SnapResponse) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			Error *SnapError `json:"error"`
		}{r.Error})
	}
	return json.Marshal(struct {
		Result interface{} `json:"result"`
	}{r.Result})
}

// PartialMessage is a message as supplied by a caller, the sender is always
// the active account and never part of it.
type PartialMessage struct {
	To         string  `json:"to"`
	Value      string  `json:"value"`
	Nonce      *uint64 `json:"nonce,omitempty"`
	GasLimit   int64   `json:"gaslimit,omitempty"`
	GasFeeCap  string  `json:"gasfeecap,omitempty"`
	GasPremium string  `json:"gaspremium,omitempty"`
	Method     uint64  `json:"method,omitempty"`
	Params     string  `json:"params,omitempty"`
}

type EstimateParams struct {
	Message PartialMessage `json:"message"`
	MaxFee  string         `json:"maxFee,omitempty"`
}

type MessageGasEstimate struct {
	GasFeeCap  string `json:"gasfeecap"`
	GasLimit   int64  `json:"gaslimit"`
	GasPremium string `json:"gaspremium"`
}

type ConfigureParams struct {
	Network       string          `json:"network,omitempty"`
	Configuration *ConfigOverride `json:"configuration,omitempty"`
}

// ConfigOverride replaces the matching parts of the network defaults.
type ConfigOverride struct {
	DerivationPath string      `json:"derivationPath,omitempty"`
	RPC            *RPCConfig  `json:"rpc,omitempty"`
	Unit           *UnitConfig `json:"unit,omitempty"`
}

type SignMessageParams struct {
	Message PartialMessage `json:"message"`
	MaxFee  string         `json:"maxFee,omitempty"`
}

type SignatureObj struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type SignedMessageObj struct {
	Message   MessageObj   `json:"message"`
	Signature SignatureObj `json:"signature"`
}
