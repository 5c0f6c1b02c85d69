package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"fraudapi/src/client"
	"fraudapi/src/model"
	"fraudapi/src/server"
)

var Version string

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "fraudapi CMD"
	app.Usage = "The fraud scoring command line interface"

	app.Commands = []cli.Command{
		serveCMD,
		predictCMD,
		logsCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var addrFlag = cli.StringFlag{
	Name:  "addr",
	Usage: "base URL of a running fraud scoring API",
	Value: "http://localhost:8000",
}

var (
	serveCMD = cli.Command{
		Name:        "serve",
		Usage:       "run the scoring API",
		Action:      serveAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Run the fraud scoring HTTP API`,
	}
	predictCMD = cli.Command{
		Name:      "predict",
		Usage:     "score one transaction",
		Action:    predictAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			addrFlag,
			cli.Float64Flag{Name: "amount", Usage: "transaction amount (required)"},
			cli.Float64Flag{Name: "card1"},
			cli.Float64Flag{Name: "card2"},
			cli.Float64Flag{Name: "card3"},
			cli.StringFlag{Name: "card4", Usage: "card network, e.g. visa"},
			cli.Float64Flag{Name: "card5"},
			cli.Float64Flag{Name: "addr1"},
			cli.Float64Flag{Name: "addr2"},
		},
		Description: `Send one transaction to POST /predict and print the verdict`,
	}
	logsCMD = cli.Command{
		Name:        "logs",
		Usage:       "fetch the prediction history",
		Action:      logsAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{addrFlag},
		Description: `Fetch GET /logs (newest first) and print it`,
	}
)

func serveAction(_ *cli.Context) error {

	logrus.Info("Starting fraud scoring API")

	if err := server.Run(); err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}

	return nil
}

func predictAction(c *cli.Context) error {
	if !c.IsSet("amount") {
		return cli.NewExitError("--amount is required", 1)
	}

	input := model.TransactionInput{}
	amount := c.Float64("amount")
	input.TransactionAmt = &amount

	if c.IsSet("card1") {
		v := c.Float64("card1")
		input.Card1 = &v
	}
	if c.IsSet("card2") {
		v := c.Float64("card2")
		input.Card2 = &v
	}
	if c.IsSet("card3") {
		v := c.Float64("card3")
		input.Card3 = &v
	}
	if c.IsSet("card4") {
		v := c.String("card4")
		input.Card4 = &v
	}
	if c.IsSet("card5") {
		v := c.Float64("card5")
		input.Card5 = &v
	}
	if c.IsSet("addr1") {
		v := c.Float64("addr1")
		input.Addr1 = &v
	}
	if c.IsSet("addr2") {
		v := c.Float64("addr2")
		input.Addr2 = &v
	}

	api := client.New(c.String("addr"))
	result, err := api.Predict(context.Background(), input)
	if err != nil {
		logrus.WithError(err).Error("predict failed")
		return err
	}

	return printJSON(result)
}

func logsAction(c *cli.Context) error {
	api := client.New(c.String("addr"))
	entries, err := api.Logs(context.Background())
	if err != nil {
		logrus.WithError(err).Error("logs fetch failed")
		return err
	}

	return printJSON(entries)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
