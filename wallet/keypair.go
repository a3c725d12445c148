// Package wallet holds the secp256k1 account the snap signs with.
package wallet

import (
	"bytes"
	"encoding/hex"

	"github.com/filecoin-project/go-address"
	gocrypto "github.com/filecoin-project/go-crypto"
	"github.com/filecoin-project/go-state-types/crypto"
	"github.com/filecoin-project/venus/venus-shared/types"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/xerrors"
)

const privateKeyLen = 32

// Keypair is the active account, its address is always the sender of the
// messages the snap builds.
type Keypair struct {
	privateKey []byte
	PublicKey  []byte
	Address    address.Address
}

func NewKeypair(privateKey []byte) (*Keypair, error) {
	if len(privateKey) != privateKeyLen {
		return nil, xerrors.Errorf("invalid private key length %d, expect %d", len(privateKey), privateKeyLen)
	}
	pk := make([]byte, privateKeyLen)
	copy(pk, privateKey)

	pub := gocrypto.PublicKey(pk)
	addr, err := address.NewSecp256k1Address(pub)
	if err != nil {
		return nil, xerrors.Errorf("derive address: %w", err)
	}

	return &Keypair{
		privateKey: pk,
		PublicKey:  pub,
		Address:    addr,
	}, nil
}

// KeypairFromHex parses a hex encoded private key.
func KeypairFromHex(s string) (*Keypair, error) {
	pk, err := hex.DecodeString(s)
	if err != nil {
		return nil, xerrors.Errorf("decode private key: %w", err)
	}
	return NewKeypair(pk)
}

func GenerateKeypair() (*Keypair, error) {
	pk, err := gocrypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return NewKeypair(pk)
}

func (k *Keypair) PrivateKeyHex() string {
	return hex.EncodeToString(k.privateKey)
}

func (k *Keypair) PublicKeyHex() string {
	return hex.EncodeToString(k.PublicKey)
}

// Sign signs the blake2b-256 digest of data.
func (k *Keypair) Sign(data []byte) (*crypto.Signature, error) {
	digest := blake2b.Sum256(data)
	sig, err := gocrypto.Sign(k.privateKey, digest[:])
	if err != nil {
		return nil, err
	}
	return &crypto.Signature{
		Type: crypto.SigTypeSecp256k1,
		Data: sig,
	}, nil
}

// SignMessage signs the cid of msg, msg.From must be the keypair address.
func (k *Keypair) SignMessage(msg *types.Message) (*types.SignedMessage, error) {
	if msg.From != k.Address {
		return nil, xerrors.Errorf("message from %s does not match account %s", msg.From, k.Address)
	}
	sig, err := k.Sign(msg.Cid().Bytes())
	if err != nil {
		return nil, xerrors.Errorf("sign message: %w", err)
	}
	return &types.SignedMessage{
		Message:   *msg,
		Signature: *sig,
	}, nil
}

// Verify checks that sig over data was produced by the key behind addr.
func Verify(addr address.Address, data []byte, sig *crypto.Signature) error {
	if sig == nil || sig.Type != crypto.SigTypeSecp256k1 {
		return xerrors.Errorf("unsupported signature")
	}
	digest := blake2b.Sum256(data)
	pub, err := gocrypto.EcRecover(digest[:], sig.Data)
	if err != nil {
		return xerrors.Errorf("recover public key: %w", err)
	}
	recovered, err := address.NewSecp256k1Address(pub)
	if err != nil {
		return err
	}
	if !bytes.Equal(recovered.Bytes(), addr.Bytes()) {
		return xerrors.Errorf("signature does not match address %s", addr)
	}
	return nil
}
