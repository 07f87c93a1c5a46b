package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aretw0/cellar/pkg/core"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printNote writes a human readable card for one note.
func printNote(w io.Writer, n core.WineNote) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", n.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", n.Name)
	fmt.Fprintf(tw, "Winery:\t%s\n", n.Winery)
	fmt.Fprintf(tw, "Varietal:\t%s\n", n.Varietal)
	fmt.Fprintf(tw, "Region:\t%s\n", n.Region)
	fmt.Fprintf(tw, "Vintage:\t%s\n", n.Vintage)
	fmt.Fprintf(tw, "Style:\t%s\n", n.Style)
	fmt.Fprintf(tw, "Rating:\t%s\n", stars(n.Rating))
	c := n.Characteristics
	fmt.Fprintf(tw, "Profile:\tbody %d  tannin %d  acidity %d  sweetness %d\n", c.Body, c.Tannin, c.Acidity, c.Sweetness)
	fmt.Fprintf(tw, "Added:\t%s\n", n.Created().Format(time.DateTime))
	fmt.Fprintf(tw, "Tasting notes:\t%s\n", n.TastingNotes)
	if n.UserNotes != "" {
		fmt.Fprintf(tw, "My notes:\t%s\n", n.UserNotes)
	}
	if n.ImageURL != "" {
		fmt.Fprintf(tw, "Image:\t%d bytes\n", len(n.ImageURL))
	}
	_ = tw.Flush()

	if len(n.SearchSources) > 0 {
		fmt.Fprintln(w, "Sources:")
		for _, s := range n.SearchSources {
			fmt.Fprintf(w, "  - %s <%s>\n", s.Title, s.URI)
		}
	}
}

// printTable writes one line per note.
func printTable(w io.Writer, notes []core.WineNote) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tVINTAGE\tREGION\tSTYLE\tRATING")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", n.ID, n.Name, n.Vintage, n.Region, n.Style, stars(n.Rating))
	}
	_ = tw.Flush()
}

func stars(rating int) string {
	if rating <= 0 {
		return "-"
	}
	return strings.Repeat("★", min(rating, core.MaxScore)) + strings.Repeat("☆", max(core.MaxScore-rating, 0))
}
