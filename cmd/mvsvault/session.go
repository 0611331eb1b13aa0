package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var session = cli.Command{
	Name:  "session",
	Usage: "manage the live session",
	Subcommands: []*cli.Command{
		{
			Name:   "save",
			Usage:  "encrypt and store the live session",
			Action: sessionSaveAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Usage:    "the password used to encrypt the session",
					Required: true,
				},
			},
		},
		{
			Name:   "show",
			Usage:  "decrypt and print the stored session",
			Action: sessionShowAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Usage:    "the password to decrypt the session",
					Required: true,
				},
			},
		},
	},
}

func sessionSaveAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.SaveSessionAccount(ctx.Context, ctx.String("password")); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("session saved")
	return nil
}

func sessionShowAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	content, err := svc.GetSessionAccountInfo(ctx.Context)
	if err != nil {
		return err
	}
	if len(content) <= 0 {
		return fmt.Errorf("no session found")
	}

	info, err := svc.DecryptAccount(ctx.Context, content, ctx.String("password"))
	if err != nil {
		return err
	}

	printJSON(info)
	return nil
}
