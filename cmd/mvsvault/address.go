package main

import (
	"github.com/tdex-network/mvs-vault/internal/config"
	"github.com/tdex-network/mvs-vault/internal/core/application"
	"github.com/urfave/cli/v2"
)

var address = cli.Command{
	Name:   "address",
	Usage:  "derive the address of an imported account at the given path",
	Action: addressAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the name of the imported account",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "the password to decrypt the account's seed",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "path",
			Usage:    "the derivation path of the address, ie. m/0/1",
			Required: true,
		},
	},
}

func addressAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	addr, err := svc.DeriveAddress(ctx.Context, application.DeriveAddressOpts{
		Name:       ctx.String("name"),
		Passphrase: ctx.String("password"),
		Network:    config.GetNetwork(),
		Path:       ctx.String("path"),
	})
	if err != nil {
		return err
	}

	printJSON(addr)
	return nil
}
