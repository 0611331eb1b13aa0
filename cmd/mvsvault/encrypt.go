package main

import (
	"fmt"

	"github.com/tdex-network/mvs-vault/pkg/wallet"
	"github.com/urfave/cli/v2"
)

var encrypt = cli.Command{
	Name:   "encrypt",
	Usage:  "encrypt a mnemonic seed with a password",
	Action: encryptAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "seed",
			Usage:    "the mnemonic seed to encrypt",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "the password used to encrypt the seed",
			Required: true,
		},
	},
}

func encryptAction(ctx *cli.Context) error {
	mnemonic := ctx.String("seed")
	if !wallet.IsMnemonicValid(mnemonic) {
		return wallet.ErrInvalidMnemonic
	}

	cypher, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  mnemonic,
		Passphrase: ctx.String("password"),
	})
	if err != nil {
		return err
	}

	fmt.Println(cypher)
	return nil
}
