package service

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/ipfs-force-community/sophon-filsnap/schema"
	"github.com/ipfs-force-community/sophon-filsnap/types"
)

const amountPattern = `"type":"string","pattern":"^(0|[1-9][0-9]*)$"`

// partialMessageSchema is a message without sender, the sender is always the
// active account.
const partialMessageSchema = `{
	"type":"object",
	"required":["to","value"],
	"not":{"required":["from"]},
	"properties":{
		"to":{"type":"string","minLength":1},
		"value":{` + amountPattern + `},
		"nonce":{"type":"integer","minimum":0},
		"gaslimit":{"type":"integer","minimum":0},
		"gasfeecap":{` + amountPattern + `},
		"gaspremium":{` + amountPattern + `},
		"method":{"type":"integer","minimum":0},
		"params":{"type":"string"}
	}
}`

var (
	estimateParamsSchema = schema.MustNew(`{
	"type":"object",
	"required":["message"],
	"properties":{
		"message":` + partialMessageSchema + `,
		"maxFee":{` + amountPattern + `}
	}
}`)

	signMessageParamsSchema = estimateParamsSchema

	configureParamsSchema = schema.MustNew(`{
	"type":"object",
	"properties":{
		"network":{"type":"string","enum":["mainnet","testnet"]},
		"configuration":{
			"type":"object",
			"properties":{
				"derivationPath":{"type":"string"},
				"rpc":{
					"type":"object",
					"required":["url"],
					"properties":{
						"url":{"type":"string","minLength":1},
						"token":{"type":"string"}
					}
				},
				"unit":{
					"type":"object",
					"required":["decimals","symbol"],
					"properties":{
						"decimals":{"type":"integer","minimum":0},
						"symbol":{"type":"string","minLength":1},
						"image":{"type":"string"},
						"customViewUrl":{"type":"string"}
					}
				}
			}
		}
	}
}`)

	signedMessageSchema = schema.MustNew(`{
	"type":"object",
	"required":["message","signature"],
	"properties":{
		"message":{
			"type":"object",
			"required":["to","from","nonce","value","gaslimit","gasfeecap","gaspremium","method"],
			"properties":{
				"version":{"type":"integer","minimum":0},
				"to":{"type":"string","minLength":1},
				"from":{"type":"string","minLength":1},
				"nonce":{"type":"integer","minimum":0},
				"value":{` + amountPattern + `},
				"gaslimit":{"type":"integer","minimum":0},
				"gasfeecap":{` + amountPattern + `},
				"gaspremium":{` + amountPattern + `},
				"method":{"type":"integer","minimum":0},
				"params":{"type":"string"}
			}
		},
		"signature":{
			"type":"object",
			"required":["type","data"],
			"properties":{
				"type":{"type":"string","enum":["SECP256K1","BLS"]},
				"data":{"type":"string","minLength":1}
			}
		}
	}
}`)
)

// checkedMessage is a partial message whose fields parsed into chain types.
type checkedMessage struct {
	to    address.Address
	value big.Int
}

// checkPartialMessage does what the schema can not: address and amount
// parsing. Failures are reported as validation errors.
func checkPartialMessage(msg types.PartialMessage) (*checkedMessage, error) {
	to, err := address.NewFromString(msg.To)
	if err != nil {
		return nil, schema.NewValidationError("message.to", "invalid address %q: %v", msg.To, err)
	}
	value, err := big.FromString(msg.Value)
	if err != nil {
		return nil, schema.NewValidationError("message.value", "invalid amount %q: %v", msg.Value, err)
	}
	return &checkedMessage{to: to, value: value}, nil
}
