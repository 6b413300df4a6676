// Command bingo runs the contract against an in-memory chain: one
// process plays owner and any number of player accounts, with full
// control over the block clock. Useful for poking at game flows before
// deploying.
package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bingopot/contract"
	"bingopot/sdk"
	"bingopot/simchain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	owner := flag.String("owner", envOr("BINGO_OWNER", "hive:owner"), "contract owner account")
	debug := flag.Bool("debug", os.Getenv("BINGO_DEBUG") != "", "log chain activity to stderr")
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync()

	chain := simchain.New(sdk.Address(*owner), time.Now().UTC())
	chain.SetLogger(logger.Sugar())
	sdk.Use(chain)
	applyEnvConfig(chain)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("BINGO", pterm.FgLightYellow.ToStyle()),
		putils.LettersFromStringWithStyle("POT", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Info.Printfln("Owner account: %s", *owner)

	sender := *owner
	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions([]string{
				"create game",
				"join game",
				"draw value",
				"claim bingo",
				"show game",
				"show board",
				"balances",
				"advance clock",
				"switch account",
				"settings",
				"quit",
			}).
			WithDefaultText(pterm.Sprintf("acting as %s at %s", sender, chain.BlockTime().Format(time.RFC3339))).
			Show()

		switch choice {
		case "create game":
			if out, ok := call(chain, "g_create", ""); ok {
				pterm.Success.Printfln("Created game %s", out)
			}
		case "join game":
			joinGame(chain, sender)
		case "draw value":
			id := askGameID()
			chain.Advance(time.Second)
			if out, ok := call(chain, "g_draw", id); ok {
				pterm.Success.Printfln("Drew value %s", out)
			}
		case "claim bingo":
			id := askGameID()
			if out, ok := call(chain, "g_bingo", id); ok {
				pterm.Success.Printfln("BINGO! Paid out %s", out)
			}
		case "show game":
			if out, ok := call(chain, "g_get", askGameID()); ok {
				renderGame(out)
			}
		case "show board":
			showBoard(chain, sender)
		case "balances":
			renderBalances(chain, sender)
		case "advance clock":
			secs, _ := pterm.DefaultInteractiveTextInput.
				WithDefaultText("Seconds to advance").WithDefaultValue("30").Show()
			d, err := time.ParseDuration(strings.TrimSpace(secs) + "s")
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			chain.Advance(d)
			pterm.Info.Printfln("Block time is now %s", chain.BlockTime().Format(time.RFC3339))
		case "switch account":
			name, _ := pterm.DefaultInteractiveTextInput.
				WithDefaultText("Account name").WithDefaultValue("hive:alice").Show()
			sender = strings.TrimSpace(name)
			chain.SetSender(sdk.Address(sender))
			fund(chain, sender)
		case "settings":
			settingsMenu(chain)
		case "quit":
			return
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newLogger builds the chain activity logger. Quiet by default so the
// terminal UI stays readable; -debug sends everything to stderr.
func newLogger(debug bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config := zap.Config{
		Encoding:         "console",
		Level:            level,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
	}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// applyEnvConfig pushes BINGO_* settings through the owner entrypoints
// so the CLI starts with the operator's configuration.
func applyEnvConfig(chain *simchain.Chain) {
	if fee := os.Getenv("BINGO_ENTRY_FEE"); fee != "" {
		payload := fee
		if asset := os.Getenv("BINGO_FEE_ASSET"); asset != "" {
			payload += "|" + asset
		}
		call(chain, "c_set_fee", payload)
	}
	if w := os.Getenv("BINGO_JOIN_WINDOW"); w != "" {
		call(chain, "c_set_join_window", w)
	}
	if tt := os.Getenv("BINGO_TURN_TIME"); tt != "" {
		call(chain, "c_set_turn_time", tt)
	}
}

// call invokes an export and reports an abort to the terminal.
func call(chain *simchain.Chain, method, payload string) (string, bool) {
	ret, err := contract.Invoke(chain, method, payload)
	if err != nil {
		pterm.Error.Println(err)
		return "", false
	}
	if ret == nil {
		return "", true
	}
	return *ret, true
}

// fund tops up a fresh account so it can buy into games.
func fund(chain *simchain.Chain, account string) {
	for _, asset := range []sdk.Asset{sdk.AssetHive, sdk.AssetHbd} {
		if chain.BalanceOf(sdk.Address(account), asset) == 0 {
			chain.Credit(sdk.Address(account), 1_000_000, asset)
		}
	}
}

func askGameID() string {
	id, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Game id").WithDefaultValue("1").Show()
	return strings.TrimSpace(id)
}

// joinGame attaches a transfer.allow intent covering the current fee
// and buys the sender into the chosen game.
func joinGame(chain *simchain.Chain, sender string) {
	id := askGameID()
	feeOut, ok := call(chain, "c_get_fee", "")
	if !ok {
		return
	}
	amount, assetName, _ := strings.Cut(feeOut, "|")
	asset := sdk.Asset(assetName)

	fund(chain, sender)
	chain.ClearIntents()
	chain.AllowTransfer(amount, asset)
	if _, ok := call(chain, "g_join", id); ok {
		pterm.Success.Printfln("%s joined game %s for %s %s", sender, id, amount, asset)
	}
}

func showBoard(chain *simchain.Chain, sender string) {
	id := askGameID()
	boardOut, ok := call(chain, "g_board", id)
	if !ok {
		return
	}
	gameOut, ok := call(chain, "g_get", id)
	if !ok {
		return
	}
	renderBoard(sender, boardOut, gameOut)
}

func settingsMenu(chain *simchain.Chain) {
	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions([]string{"set entry fee", "set join window", "set turn time", "show config", "back"}).
		Show()

	prompt := func(label, def string) string {
		v, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(label).WithDefaultValue(def).Show()
		return strings.TrimSpace(v)
	}

	switch choice {
	case "set entry fee":
		payload := prompt("Fee as amount or amount|asset", "1.000|hive")
		if _, ok := call(chain, "c_set_fee", payload); ok {
			pterm.Success.Println("Entry fee updated")
		}
	case "set join window":
		if _, ok := call(chain, "c_set_join_window", prompt("Join window seconds", "300")); ok {
			pterm.Success.Println("Join window updated")
		}
	case "set turn time":
		if _, ok := call(chain, "c_set_turn_time", prompt("Turn time seconds", "30")); ok {
			pterm.Success.Println("Turn time updated")
		}
	case "show config":
		renderConfig(chain)
	}
}
