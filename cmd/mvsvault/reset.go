package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var reset = cli.Command{
	Name:   "reset",
	Usage:  "clear the live session, saved accounts are kept",
	Action: resetAction,
}

func resetAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.Reset(ctx.Context); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("session cleared")
	return nil
}
