package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var account = cli.Command{
	Name:  "account",
	Usage: "manage the saved accounts",
	Subcommands: []*cli.Command{
		{
			Name:   "save",
			Usage:  "save the stored session under the given name",
			Action: accountSaveAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Usage:    "the name of the account",
					Required: true,
				},
			},
		},
		{
			Name:   "switch",
			Usage:  "restore a saved account into the live session",
			Action: accountSwitchAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Usage:    "the name of the account",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "password",
					Usage:    "the password to decrypt the account",
					Required: true,
				},
			},
		},
		{
			Name:   "rename",
			Usage:  "rename a saved account",
			Action: accountRenameAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Usage:    "the current name of the account",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "new-name",
					Usage:    "the new name of the account",
					Required: true,
				},
			},
		},
		{
			Name:   "delete",
			Usage:  "delete a saved account",
			Action: accountDeleteAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Usage:    "the name of the account",
					Required: true,
				},
			},
		},
	},
}

func accountSaveAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.SaveAccount(ctx.Context, ctx.String("name")); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("account %s saved\n", ctx.String("name"))
	return nil
}

func accountSwitchAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.SwitchAccount(
		ctx.Context, ctx.String("name"), ctx.String("password"),
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("switched to account %s\n", ctx.String("name"))
	return nil
}

func accountRenameAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.RenameAccount(
		ctx.Context, ctx.String("name"), ctx.String("new-name"),
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("account %s renamed to %s\n", ctx.String("name"), ctx.String("new-name"))
	return nil
}

func accountDeleteAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.DeleteAccount(ctx.Context, ctx.String("name")); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("account %s deleted\n", ctx.String("name"))
	return nil
}
