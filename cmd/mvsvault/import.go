package main

import (
	"fmt"

	"github.com/tdex-network/mvs-vault/internal/config"
	"github.com/tdex-network/mvs-vault/internal/core/application"
	"github.com/urfave/cli/v2"
)

var importAccount = cli.Command{
	Name:   "import",
	Usage:  "import an account from an encrypted mnemonic seed",
	Action: importAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "encrypted-seed",
			Usage:    "the mnemonic seed encrypted with the 'encrypt' command",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "the password to decrypt the seed",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "the name of the account, defaults to account<N>",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "the number of addresses to derive, defaults to ADDRESS_COUNT",
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: "the derivation path template, defaults to BASE_DERIVATION_PATH",
		},
	},
}

func importAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	count := config.GetInt(config.AddressCountKey)
	if ctx.IsSet("count") {
		count = ctx.Int("count")
	}
	basePath := config.GetString(config.BaseDerivationPathKey)
	if ctx.IsSet("path") {
		basePath = ctx.String("path")
	}

	if _, err := svc.ImportEncryptedMnemonic(
		ctx.Context,
		application.ImportOpts{
			EncryptedMnemonic: ctx.String("encrypted-seed"),
			Passphrase:        ctx.String("password"),
			Network:           config.GetNetwork(),
			Count:             &count,
			BasePath:          basePath,
			Name:              ctx.String("name"),
		},
	); err != nil {
		return err
	}

	active, cancel := svc.ActiveAccount(ctx.Context)
	defer cancel()

	imported, ok := <-active
	if !ok {
		return fmt.Errorf("active account not available")
	}

	printJSON(map[string]interface{}{
		"id":        imported.ID,
		"name":      imported.Name,
		"addresses": imported.Addresses,
		"xpub":      imported.Private.Xpub,
	})
	return nil
}
