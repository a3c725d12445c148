package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialArgs(t *testing.T) {
	for addr, expect := range map[string]string{
		"/ip4/127.0.0.1/tcp/1234":             "ws://127.0.0.1:1234/rpc/v1",
		"https://api.node.glif.io":            "https://api.node.glif.io/rpc/v1",
		"https://api.node.glif.io/rpc/v0":     "https://api.node.glif.io/rpc/v0",
		"ws://127.0.0.1:1234/rpc/v1":          "ws://127.0.0.1:1234/rpc/v1",
		"http://127.0.0.1:1234":               "http://127.0.0.1:1234/rpc/v1",
		"wss://wss.node.glif.io/apigw/lotus/": "wss://wss.node.glif.io/apigw/lotus/",
	} {
		res, err := DialArgs(addr, "v1")
		require.NoError(t, err, addr)
		assert.Equal(t, expect, res, addr)
	}

	res, err := DialArgs("/ip4/127.0.0.1/tcp/39822", "v0")
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:39822/rpc/v0", res)

	_, err = DialArgs("/ip4/not-an-ip/tcp/1", "v1")
	assert.Error(t, err)
}
