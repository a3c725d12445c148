package testhelper

import (
	"context"
	"errors"
	"sync"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/venus/venus-shared/types"
	"github.com/ipfs/go-cid"
)

var ErrGasLimitNegative = errors.New("gas limit is negative")

var (
	DefGasUsed    = int64(10000)
	DefGasPremium = abi.NewTokenAmount(1000)
	DefGasFeeCap  = abi.NewTokenAmount(10000)
	DefBalance    = abi.NewTokenAmount(1000)
)

// EstimateCall is one recorded GasEstimateMessageGas call.
type EstimateCall struct {
	Msg  *types.Message
	Spec *types.MessageSendSpec
	TSK  types.TipSetKey
}

// MockFullNode answers the node calls of the snap from memory and records
// every call it receives.
type MockFullNode struct {
	// Err, when set, is returned by every call
	Err error

	Nonce    map[address.Address]uint64
	Balances map[address.Address]big.Int

	EstimateCalls []EstimateCall
	Pushed        []*types.SignedMessage
	Dials         int
	Closes        int

	nonceCalls   int
	balanceCalls int

	l sync.Mutex
}

func NewMockFullNode() *MockFullNode {
	return &MockFullNode{
		Nonce:    make(map[address.Address]uint64),
		Balances: make(map[address.Address]big.Int),
	}
}

// Calls returns the number of node calls made so far.
func (f *MockFullNode) Calls() int {
	f.l.Lock()
	defer f.l.Unlock()
	return len(f.EstimateCalls) + len(f.Pushed) + f.nonceCalls + f.balanceCalls
}

func (f *MockFullNode) GasEstimateMessageGas(ctx context.Context, msg *types.Message, spec *types.MessageSendSpec, tsk types.TipSetKey) (*types.Message, error) {
	f.l.Lock()
	defer f.l.Unlock()
	cp := *msg
	f.EstimateCalls = append(f.EstimateCalls, EstimateCall{Msg: &cp, Spec: spec, TSK: tsk})
	if f.Err != nil {
		return nil, f.Err
	}
	if msg.GasLimit < 0 {
		return nil, ErrGasLimitNegative
	}

	res := cp
	if res.GasLimit == 0 {
		res.GasLimit = DefGasUsed
	}
	if res.GasFeeCap.Int == nil || res.GasFeeCap.IsZero() {
		res.GasFeeCap = DefGasFeeCap
	}
	if res.GasPremium.Int == nil || res.GasPremium.IsZero() {
		res.GasPremium = DefGasPremium
	}
	return &res, nil
}

func (f *MockFullNode) MpoolGetNonce(ctx context.Context, addr address.Address) (uint64, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.nonceCalls++
	if f.Err != nil {
		return 0, f.Err
	}
	return f.Nonce[addr], nil
}

func (f *MockFullNode) MpoolPush(ctx context.Context, smsg *types.SignedMessage) (cid.Cid, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.Pushed = append(f.Pushed, smsg)
	if f.Err != nil {
		return cid.Undef, f.Err
	}
	f.Nonce[smsg.Message.From] = smsg.Message.Nonce + 1
	return smsg.Cid(), nil
}

func (f *MockFullNode) WalletBalance(ctx context.Context, addr address.Address) (big.Int, error) {
	f.l.Lock()
	defer f.l.Unlock()
	f.balanceCalls++
	if f.Err != nil {
		return big.Int{}, f.Err
	}
	if bal, ok := f.Balances[addr]; ok {
		return bal, nil
	}
	return DefBalance, nil
}

// Dial counts a connection, the returned func counts its close.
func (f *MockFullNode) Dial() func() {
	f.l.Lock()
	defer f.l.Unlock()
	f.Dials++
	return func() {
		f.l.Lock()
		defer f.l.Unlock()
		f.Closes++
	}
}
