package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/holdemgrid/hands"
)

func styleCell(hand string, k cellKind) string {
	switch k {
	case cellInside:
		return pterm.LightCyan(hand)
	case cellBorder:
		return pterm.LightGreen(hand)
	case cellAdded:
		return pterm.LightYellow(hand)
	}
	return pterm.FgDarkGray.Sprint(hand)
}

func renderSummary(r report) {
	pterm.DefaultSection.Println("Range")
	pterm.Info.Printfln("%d hands, %d of %d combos", len(r.rng), r.combos, hands.TotalCombinations)
	for i, island := range r.islands {
		pterm.Printfln("  island %d: %s", i+1, strings.Join(island, " "))
	}

	pterm.DefaultSection.Println("Border + 1")
	pterm.Info.Printfln("%d hands", len(r.expansion))
	pterm.Println("  " + strings.Join(r.expansion.Sorted(), " "))
	if added := r.added(); len(added) > 0 {
		pterm.Println("  new: " + pterm.LightYellow(strings.Join(added, " ")))
	}
}

func renderGrid(r report) error {
	m := hands.Matrix()
	kinds := r.kinds()
	data := make(pterm.TableData, 0, hands.Size)
	for i := range m {
		row := make([]string, 0, hands.Size)
		for j, h := range m[i] {
			row = append(row, styleCell(h, kinds[i][j]))
		}
		data = append(data, row)
	}
	pterm.DefaultSection.Println("Matrix")
	return pterm.DefaultTable.WithData(data).Render()
}
