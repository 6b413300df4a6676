package main

import (
	"strings"
	"time"

	"github.com/pterm/pterm"

	"bingopot/sdk"
	"bingopot/simchain"
)

var statusNames = map[string]string{
	"0": pterm.LightCyan("joining"),
	"1": pterm.LightGreen("in progress"),
	"2": pterm.LightRed("completed"),
}

// renderGame pretty-prints a g_get response:
//
//	id|status|fee|asset|players|startTime|lastDrawTime|drawn count|v1,v2,...
func renderGame(out string) {
	fields := strings.Split(out, "|")
	if len(fields) != 9 {
		pterm.Error.Printfln("unexpected game response: %q", out)
		return
	}

	status, ok := statusNames[fields[1]]
	if !ok {
		status = fields[1]
	}

	pterm.DefaultBox.
		WithTitle(pterm.LightYellow("GAME "+fields[0])).
		WithTitleTopCenter().
		WithHorizontalPadding(4).
		Printfln("status: %s\nentry fee: %s %s\nplayers: %s\ncreated: %s\nlast draw: %s\ndrawn (%s): %s",
			status, fields[2], fields[3], fields[4],
			formatUnix(fields[5]), formatUnix(fields[6]),
			fields[7], fields[8])
}

// renderBoard prints the 24 board cells in rows, highlighting the ones
// already drawn in the game.
func renderBoard(owner, boardOut, gameOut string) {
	drawn := map[string]bool{}
	gameFields := strings.Split(gameOut, "|")
	if len(gameFields) == 9 && gameFields[8] != "" {
		for _, v := range strings.Split(gameFields[8], ",") {
			drawn[v] = true
		}
	}

	cells := strings.Split(boardOut, ",")
	var b strings.Builder
	for i, c := range cells {
		if drawn[c] {
			b.WriteString(pterm.BgGreen.Sprintf("%4s", c))
		} else {
			b.WriteString(pterm.Sprintf("%4s", c))
		}
		if (i+1)%6 == 0 {
			b.WriteString("\n")
		}
	}

	pterm.DefaultBox.
		WithTitle(pterm.LightCyan(owner)).
		WithTitleTopLeft().
		WithHorizontalPadding(2).
		Println(b.String())
}

func renderBalances(chain *simchain.Chain, sender string) {
	rows := pterm.TableData{{"account", "hive", "hbd"}}
	rows = append(rows, []string{
		sender,
		milli(chain.BalanceOf(sdk.Address(sender), sdk.AssetHive)),
		milli(chain.BalanceOf(sdk.Address(sender), sdk.AssetHbd)),
	})
	rows = append(rows, []string{
		"contract pool",
		milli(chain.PoolBalance(sdk.AssetHive)),
		milli(chain.PoolBalance(sdk.AssetHbd)),
	})
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func renderConfig(chain *simchain.Chain) {
	fee, _ := call(chain, "c_get_fee", "")
	window, _ := call(chain, "c_get_join_window", "")
	turn, _ := call(chain, "c_get_turn_time", "")
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"setting", "value"},
		{"entry fee", strings.ReplaceAll(fee, "|", " ")},
		{"join window", window + "s"},
		{"turn time", turn + "s"},
	}).Render()
}

func formatUnix(s string) string {
	var secs int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
		secs = secs*10 + int64(r-'0')
	}
	return time.Unix(secs, 0).UTC().Format(time.RFC3339)
}

// milli renders a 3-decimal fixed point balance.
func milli(v int64) string {
	whole := v / 1000
	frac := v % 1000
	return pterm.Sprintf("%d.%03d", whole, frac)
}
