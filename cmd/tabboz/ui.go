package main

import (
	"fmt"
	"io"

	"tabboz/internal/game"

	"github.com/fatih/color"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

func renderPhones(w io.Writer, phones []game.Phone) {
	accent.Fprintln(w, "\n== TELEFONINI ==")
	fmt.Fprintf(w, "%-3s %-24s %14s %6s\n", "#", "NOME", "PREZZO", "FAMA")
	for i, p := range phones {
		fmt.Fprintf(w, "%-3d %-24s %14s %6s\n", i+1, truncate(p.Name, 24), game.FormatCurrency(p.Price), signed(p.Reputation))
	}
}

func renderPlans(w io.Writer, plans []game.Plan) {
	accent.Fprintln(w, "\n== ABBONAMENTI ==")
	fmt.Fprintf(w, "%-3s %-28s %-8s %12s %12s\n", "#", "NOME", "TIPO", "PREZZO", "CREDITO")
	for i, p := range plans {
		fmt.Fprintf(w, "%-3d %-28s %-8s %12s %12s\n",
			i+1,
			truncate(p.Name, 28),
			p.Kind,
			game.FormatCurrency(p.Price),
			game.FormatCurrency(p.Credit),
		)
	}
	fmt.Fprintln(w)
}

func renderSummary(w io.Writer, s game.Summary) {
	accent.Fprintln(w, "\n== SITUAZIONE ==")
	fmt.Fprintf(w, "%-14s %s\n", "Soldi:", colorizeFunds(s.Funds))
	fmt.Fprintf(w, "%-14s %d/%d\n", "Fama:", s.Reputation, game.MaxReputation)
	phone := "-"
	if s.HasPhone {
		phone = s.PhoneName
	}
	fmt.Fprintf(w, "%-14s %s\n", "Telefonino:", neutral.Sprint(phone))
	if s.Subscription {
		fmt.Fprintf(w, "%-14s %s (%s)\n", "Abbonamento:", s.PlanName, game.FormatCurrency(s.PlanCredit))
	} else {
		fmt.Fprintf(w, "%-14s -\n", "Abbonamento:")
	}
	fmt.Fprintln(w)
}

func colorizeFunds(v int64) string {
	text := game.FormatCurrency(v)
	if v == 0 {
		return danger.Sprint(text)
	}
	return success.Sprint(text)
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
