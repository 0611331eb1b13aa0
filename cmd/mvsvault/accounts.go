package main

import (
	"github.com/urfave/cli/v2"
)

var accounts = cli.Command{
	Name:   "accounts",
	Usage:  "list the imported accounts",
	Action: accountsAction,
}

var saved = cli.Command{
	Name:   "saved",
	Usage:  "list the names of the saved accounts",
	Action: savedAction,
}

func accountsAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	list, err := svc.GetAccounts(ctx.Context)
	if err != nil {
		return err
	}

	type accountInfo struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Addresses int    `json:"derived_addresses"`
		Path      string `json:"path"`
	}
	infos := make([]accountInfo, 0, len(list))
	for _, a := range list {
		infos = append(infos, accountInfo{
			ID:        a.ID,
			Name:      a.Name,
			Addresses: len(a.DerivedAddresses()),
			Path:      a.Private.Path,
		})
	}

	printJSON(infos)
	return nil
}

func savedAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	list, err := svc.GetSavedAccounts(ctx.Context)
	if err != nil {
		return err
	}

	printJSON(list.Names())
	return nil
}
