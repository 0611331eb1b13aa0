package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var name = cli.Command{
	Name:   "name",
	Usage:  "get or set the name of the current account",
	Action: nameAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "set",
			Usage: "the new name of the current account",
		},
	},
}

func nameAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if ctx.IsSet("set") {
		if err := svc.SetAccountName(ctx.Context, ctx.String("set")); err != nil {
			return err
		}
	}

	accountName, err := svc.GetAccountName(ctx.Context)
	if err != nil {
		return err
	}

	fmt.Println(accountName)
	return nil
}
