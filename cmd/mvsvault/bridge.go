package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/mvs-vault/pkg/bridge"
	"github.com/urfave/cli/v2"
)

var bridgeCmd = cli.Command{
	Name:  "bridge",
	Usage: "swap coins through the ETP bridge",
	Subcommands: []*cli.Command{
		{
			Name:   "rate",
			Usage:  "get the exchange rate of a pair",
			Action: bridgeRateAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "deposit",
					Usage:    "the symbol of the deposited coin",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "receive",
					Usage:    "the symbol of the received coin",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "amount",
					Usage: "an optional deposit amount to estimate the received one",
				},
			},
		},
		{
			Name:   "pairs",
			Usage:  "list the supported pairs",
			Action: bridgePairsAction,
		},
		{
			Name:   "order",
			Usage:  "get the details of an order",
			Action: bridgeOrderAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Usage:    "the id of the order",
					Required: true,
				},
			},
		},
		{
			Name:   "create-order",
			Usage:  "create a new swap order",
			Action: bridgeCreateOrderAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "deposit",
					Usage:    "the symbol of the deposited coin",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "deposit-amount",
					Usage:    "the amount to deposit",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "refund-address",
					Usage:    "the address where to refund the deposit in case of failure",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "receive",
					Usage:    "the symbol of the received coin",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "receive-address",
					Usage:    "the address where to receive the coins",
					Required: true,
				},
			},
		},
	},
}

func bridgeRateAction(ctx *cli.Context) error {
	client, err := getBridgeClient()
	if err != nil {
		return err
	}

	rate, err := client.GetRate(ctx.Context, ctx.String("deposit"), ctx.String("receive"))
	if err != nil {
		return err
	}

	if !ctx.IsSet("amount") {
		printJSON(rate)
		return nil
	}

	amount, err := decimal.NewFromString(ctx.String("amount"))
	if err != nil {
		return err
	}
	printJSON(map[string]interface{}{
		"rate":          rate,
		"validAmount":   rate.IsValidDepositAmount(amount),
		"receiveAmount": rate.ReceiveAmount(amount),
	})
	return nil
}

func bridgePairsAction(ctx *cli.Context) error {
	client, err := getBridgeClient()
	if err != nil {
		return err
	}

	pairs, err := client.GetPairs(ctx.Context)
	if err != nil {
		return err
	}

	printJSON(pairs)
	return nil
}

func bridgeOrderAction(ctx *cli.Context) error {
	client, err := getBridgeClient()
	if err != nil {
		return err
	}

	order, err := client.GetOrder(ctx.Context, ctx.String("id"))
	if err != nil {
		return err
	}

	printJSON(order)
	return nil
}

func bridgeCreateOrderAction(ctx *cli.Context) error {
	client, err := getBridgeClient()
	if err != nil {
		return err
	}

	depositSymbol := ctx.String("deposit")
	receiveSymbol := ctx.String("receive")
	depositAmount, err := decimal.NewFromString(ctx.String("deposit-amount"))
	if err != nil {
		return err
	}

	rate, err := client.GetRate(ctx.Context, depositSymbol, receiveSymbol)
	if err != nil {
		return err
	}
	if !rate.IsValidDepositAmount(depositAmount) {
		return fmt.Errorf(
			"deposit amount must be in range [%s, %s]",
			rate.DepositMin, rate.DepositMax,
		)
	}

	order, err := client.CreateOrder(ctx.Context, bridge.CreateOrderParameters{
		DepositSymbol:  depositSymbol,
		DepositAmount:  depositAmount,
		RefundAddress:  ctx.String("refund-address"),
		ReceiveSymbol:  receiveSymbol,
		ReceiveAmount:  rate.ReceiveAmount(depositAmount),
		ReceiveAddress: ctx.String("receive-address"),
	})
	if err != nil {
		return err
	}

	printJSON(order)
	return nil
}
