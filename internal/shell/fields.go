package shell

import (
	"sort"

	"tabboz/internal/game"
)

type Line struct {
	Label string
	Text  string
}

var menuLabels = map[game.FieldID]string{
	game.FieldFunds:      "Soldi",
	game.FieldPhoneName:  "Telefonino",
	game.FieldPlanName:   "Abbonamento",
	game.FieldPlanCredit: "Credito",
}

var flowLabels = map[game.FieldID]string{
	game.FieldFunds:       "Soldi",
	game.FieldCurrentPlan: "Abbonamento attuale",
}

// Lines picks the fields worth printing for d, in field order. Row prices are
// left out since shells print them next to the rows.
func Lines(d game.Dialog, fields map[game.FieldID]string) []Line {
	labels := flowLabels
	if _, ok := d.(*game.Cellular); ok {
		labels = menuLabels
	}
	ids := make([]int, 0, len(fields))
	for id := range fields {
		if _, ok := labels[id]; ok {
			ids = append(ids, int(id))
		}
	}
	sort.Ints(ids)

	out := make([]Line, 0, len(ids))
	for _, id := range ids {
		text := fields[game.FieldID(id)]
		if text == "" {
			text = "-"
		}
		out = append(out, Line{Label: labels[game.FieldID(id)], Text: text})
	}
	return out
}
