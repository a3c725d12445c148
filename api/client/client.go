package client

import (
	"context"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"
)

// NewFilsnapRPC creates a new jsonrpc client.
// addr must start with http(s) or ws(s)
func NewFilsnapRPC(ctx context.Context, addr string, requestHeader http.Header) (IFilsnap, jsonrpc.ClientCloser, error) {
	var res Filsnap
	closer, err := jsonrpc.NewMergeClient(ctx, addr, "Filsnap",
		[]interface{}{
			&res.Internal,
		},
		requestHeader,
	)

	return &res, closer, err
}
