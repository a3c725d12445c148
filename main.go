package main

import (
	"fmt"
	"net"
	_ "net/http/pprof"
	"os"

	"github.com/mitchellh/go-homedir"
	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/ipfs-force-community/sophon-filsnap/api"
	ccli "github.com/ipfs-force-community/sophon-filsnap/cli"
	"github.com/ipfs-force-community/sophon-filsnap/config"
	"github.com/ipfs-force-community/sophon-filsnap/dialog"
	"github.com/ipfs-force-community/sophon-filsnap/filestore"
	"github.com/ipfs-force-community/sophon-filsnap/log"
	"github.com/ipfs-force-community/sophon-filsnap/models"
	"github.com/ipfs-force-community/sophon-filsnap/service"
	"github.com/ipfs-force-community/sophon-filsnap/version"
	"github.com/ipfs-force-community/sophon-filsnap/wallet"
)

func main() {
	app := &cli.App{
		Name:  "sophon-filsnap",
		Usage: "host the filecoin snap and serve its rpc",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Value: "~/.sophon-filsnap",
			},
		},
		Commands: []*cli.Command{
			ccli.AccountCmds,
			ccli.ConfigCmds,
			ccli.MsgCmds,
			ccli.VersionCmd,
			runCmd,
		},
	}

	app.Version = version.Version
	app.Setup()
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the snap host",
	Flags: []cli.Flag{
		// node
		&cli.StringFlag{
			Name:  "node-url",
			Usage: "url for connection lotus/venus, overrides the rpc of the snap configuration",
		},
		&cli.StringFlag{
			Name:  "node-token",
			Usage: "token auth for lotus/venus",
		},

		// database
		&cli.StringFlag{
			Name:  "db-type",
			Usage: "which db to use. sqlite/mysql",
		},
		&cli.StringFlag{
			Name:  "mysql-dsn",
			Usage: "mysql connection string",
		},

		&cli.StringFlag{
			Name:  "listen",
			Usage: "multiaddr the api listens on",
		},
		&cli.BoolFlag{
			Name:  "auto-approve",
			Usage: "approve every signing request without asking",
		},
	},
	Action: runAction,
}

func runAction(ctx *cli.Context) error {
	var fsRepo filestore.FSRepo
	cfg := config.DefaultConfig()

	repoPath, err := homedir.Expand(ctx.String("repo"))
	if err != nil {
		return err
	}
	hasFSRepo, err := filestore.HasFSRepo(repoPath)
	if err != nil {
		return err
	}
	if hasFSRepo {
		fsRepo, err = filestore.NewFSRepo(repoPath)
		if err != nil {
			return err
		}
		cfg = fsRepo.Config()
	}

	if err = updateFlag(cfg, ctx); err != nil {
		return err
	}

	if !hasFSRepo {
		fsRepo, err = filestore.InitFSRepo(repoPath, cfg)
		if err != nil {
			return err
		}
	}

	log, err := log.SetLogger(&cfg.Log)
	if err != nil {
		return err
	}

	keypair, err := loadKeypair(fsRepo, cfg, log)
	if err != nil {
		return err
	}
	log.Infof("active account %s, node url: %s", keypair.Address, cfg.Node.Url)

	var dlg dialog.Dialog = dialog.NewPrompt()
	if cfg.Dialog.AutoApprove {
		log.Warn("auto approve is on, every signing request will be approved")
		dlg = dialog.Fixed(true)
	}

	mAddr, err := ma.NewMultiaddr(cfg.API.Address)
	if err != nil {
		return err
	}
	// Listen on the configured address in order to bind the port number in case it has
	// been configured as zero (i.e. OS-provided)
	apiListener, err := manet.Listen(mAddr)
	if err != nil {
		return err
	}
	lst := manet.NetListener(apiListener)

	provider := fx.Options(
		fx.Logger(fxLogger{log}),
		// prover
		fx.Supply(cfg, &cfg.Snap, &cfg.DB, &cfg.API, &cfg.Node, &cfg.Log, &cfg.Metrics),
		fx.Supply(log),
		fx.Supply(keypair),
		fx.Provide(func() dialog.Dialog {
			return dlg
		}),
		fx.Provide(func() filestore.FSRepo {
			return fsRepo
		}),
		// db
		fx.Provide(models.SetDataBase),
		// service
		service.SnapService(),
		// api
		fx.Provide(api.NewSnapImp),

		fx.Provide(func() net.Listener {
			return lst
		}),
	)

	invoker := fx.Options(
		// invoke
		fx.Invoke(models.AutoMigrate),
		fx.Invoke(api.RunAPI),
	)

	app := fx.New(provider, invoker)
	if err := app.Start(ctx.Context); err != nil {
		// comment fx.NopLogger few lines above for easier debugging
		return fmt.Errorf("starting app: %w", err)
	}

	<-app.Done()

	log.Warn("received shutdown")
	log.Warn("Shutting down...")
	if err := app.Stop(ctx.Context); err != nil {
		log.Errorf("graceful shutting down failed: %s", err)
		return err
	}
	log.Info("Graceful shutdown successful")

	return nil
}

// loadKeypair returns the account of the config, a new account is generated
// and saved on the first run.
func loadKeypair(fsRepo filestore.FSRepo, cfg *config.Config, log *log.Logger) (*wallet.Keypair, error) {
	if len(cfg.Snap.PrivateKey) > 0 {
		return wallet.KeypairFromHex(cfg.Snap.PrivateKey)
	}

	keypair, err := wallet.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	cfg.Snap.PrivateKey = keypair.PrivateKeyHex()
	if err := fsRepo.ReplaceConfig(cfg); err != nil {
		return nil, fmt.Errorf("save private key: %w", err)
	}
	log.Infof("generate account %s", keypair.Address)
	return keypair, nil
}

func updateFlag(cfg *config.Config, ctx *cli.Context) error {
	if ctx.IsSet("node-url") {
		cfg.Node.Url = ctx.String("node-url")
	}

	if ctx.IsSet("node-token") {
		cfg.Node.Token = ctx.String("node-token")
	}

	if ctx.IsSet("listen") {
		cfg.API.Address = ctx.String("listen")
	}

	if ctx.IsSet("auto-approve") {
		cfg.Dialog.AutoApprove = ctx.Bool("auto-approve")
	}

	if ctx.IsSet("db-type") {
		cfg.DB.Type = ctx.String("db-type")
		switch cfg.DB.Type {
		case "sqlite":
		case "mysql":
			if ctx.IsSet("mysql-dsn") {
				cfg.DB.MySql.ConnectionString = ctx.String("mysql-dsn")
			}
		default:
			return fmt.Errorf("unexpected db type %s", cfg.DB.Type)
		}
	}
	return nil
}

type fxLogger struct {
	log *log.Logger
}

func (l fxLogger) Printf(str string, args ...interface{}) {
	l.log.Infof(str, args...)
}
