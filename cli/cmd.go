package cli

import (
	"encoding/json"
	"fmt"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/ipfs-force-community/sophon-filsnap/api/client"
	"github.com/ipfs-force-community/sophon-filsnap/filestore"
	"github.com/ipfs-force-community/sophon-filsnap/service"
	"github.com/ipfs-force-community/sophon-filsnap/types"
)

func getAPI(ctx *cli.Context) (client.IFilsnap, jsonrpc.ClientCloser, error) {
	repoPath, err := homedir.Expand(ctx.String("repo"))
	if err != nil {
		return &client.Filsnap{}, func() {}, err
	}
	fsRepo, err := filestore.NewFSRepo(repoPath)
	if err != nil {
		return &client.Filsnap{}, func() {}, err
	}
	addr, err := service.DialArgs(fsRepo.Config().API.Address, "v0")
	if err != nil {
		return &client.Filsnap{}, func() {}, err
	}

	return client.NewFilsnapRPC(ctx.Context, addr, nil)
}

// callSnap sends one snap request and decodes its result into out.
func callSnap(ctx *cli.Context, method string, params interface{}, out interface{}) error {
	api, closer, err := getAPI(ctx)
	if err != nil {
		return err
	}
	defer closer()

	req := types.SnapRequest{Method: method}
	if params != nil {
		if req.Params, err = json.Marshal(params); err != nil {
			return err
		}
	}
	resp, err := api.OnRPCRequest(ctx.Context, req)
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return xerrors.New(resp.Error.Message)
	}
	if out == nil {
		return nil
	}

	data, err := json.Marshal(resp.Result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func printJSON(v interface{}) error {
	bytes, err := json.MarshalIndent(v, " ", "\t")
	if err != nil {
		return err
	}
	fmt.Println(string(bytes))
	return nil
}
