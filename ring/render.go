//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Tabulate prints the result as tables to the writer.
func (r *Result) Tabulate(w io.Writer) {
	fmt.Fprintf(w, "p=%v, α=%v\n", r.P, r.Alpha)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Participant").SetAlign(tabulate.ML)
	tab.Header("y").SetAlign(tabulate.MR)
	for _, p := range r.Participants {
		row := tab.Row()
		row.Column(p.Label)
		row.Column(fmt.Sprintf("%v", p.Public))
	}
	tab.Print(w)

	tab = tabulate.New(tabulate.UnicodeLight)
	tab.Header("Round").SetAlign(tabulate.MR)
	tab.Header("Key").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)
	for round, keys := range r.Rounds() {
		for idx, key := range keys {
			row := tab.Row()
			if idx == 0 {
				row.Column(fmt.Sprintf("%d", round))
			} else {
				row.Column("")
			}
			row.Column(key.Key)
			row.Column(fmt.Sprintf("%v", key.Value))
		}
	}
	shared := r.SharedSecret()
	if shared != nil {
		row := tab.Row()
		row.Column("").SetFormat(tabulate.FmtBold)
		row.Column("Shared").SetFormat(tabulate.FmtBold)
		row.Column(fmt.Sprintf("%v", shared)).SetFormat(tabulate.FmtBold)
	}
	tab.Print(w)
}
