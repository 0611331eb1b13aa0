package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tdex-network/mvs-vault/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "mvs vault CLI"
	app.Usage = "Command line interface for managing the accounts of a Metaverse wallet vault"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "the data directory of the vault",
		},
		&cli.StringFlag{
			Name:  "network",
			Usage: "the network of the imported accounts, either mvs or mvs-testnet",
		},
	}
	app.Before = initConfig
	app.Commands = append(
		app.Commands,
		&genseed,
		&encrypt,
		&importAccount,
		&address,
		&accounts,
		&saved,
		&session,
		&account,
		&name,
		&reset,
		&bridgeCmd,
	)
	return app
}

// initConfig propagates global flags to the environment before loading the
// config, so that flags take precedence over env vars.
func initConfig(ctx *cli.Context) error {
	flags := map[string]string{
		"datadir": config.DatadirKey,
		"network": config.NetworkKey,
	}
	for flag, key := range flags {
		if ctx.IsSet(flag) {
			if err := os.Setenv("MVSVAULT_"+key, ctx.String(flag)); err != nil {
				return err
			}
		}
	}
	return config.InitConfig()
}

func printJSON(v interface{}) {
	buf, err := json.MarshalIndent(v, "", "   ")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}
	fmt.Println(string(buf))
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[mvsvault] %v\n", err)
	os.Exit(1)
}
