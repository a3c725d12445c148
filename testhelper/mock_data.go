package testhelper

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	shared "github.com/filecoin-project/venus/venus-shared/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ipfs-force-community/sophon-filsnap/types"
)

// RandAddress returns a random actor address.
func RandAddress(t *testing.T) address.Address {
	uid := uuid.New()
	addr, err := address.NewActorAddress(uid[:])
	require.NoError(t, err)
	return addr
}

func NewUnsignedMessage(t *testing.T) shared.Message {
	return shared.Message{
		From:       RandAddress(t),
		To:         RandAddress(t),
		Nonce:      uint64(rand.Int63n(1024)),
		Value:      big.NewInt(rand.Int63n(1024)),
		GasLimit:   rand.Int63n(100) + 1,
		GasFeeCap:  abi.NewTokenAmount(2000),
		GasPremium: abi.NewTokenAmount(1024),
	}
}

// NewMessageStatus returns a status record whose cid is the cid of a random
// message.
func NewMessageStatus(t *testing.T) types.MessageStatus {
	msg := NewUnsignedMessage(t)
	obj := types.FromMessage(&msg)
	return types.MessageStatus{
		Cid:     msg.Cid().String(),
		Message: &obj,
	}
}

func ObjectToString(obj interface{}) string {
	res, err := json.Marshal(obj)
	if err != nil {
		panic(fmt.Errorf("marshal failed %v", err))
	}
	return string(res)
}

func ObjectToRaw(obj interface{}) json.RawMessage {
	return json.RawMessage(ObjectToString(obj))
}
