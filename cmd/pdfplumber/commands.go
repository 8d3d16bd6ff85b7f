// pdfplumber - structured content extraction for PDF documents
// Copyright (C) 2026 The pdfplumber-go Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pdfplumber-go/pdfplumber/page"
	"github.com/pdfplumber-go/pdfplumber/table"
	"github.com/pdfplumber-go/pdfplumber/words"
)

func wordOptionsFromFlags(cmd *cli.Command) words.Options {
	return words.Options{
		XTolerance: cmd.Float64("x-tolerance"),
		YTolerance: cmd.Float64("y-tolerance"),
	}
}

func toleranceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: "x-tolerance", Usage: "horizontal gap tolerance for word grouping (default 3.0pt)"},
		&cli.Float64Flag{Name: "y-tolerance", Usage: "vertical gap tolerance for word/line grouping (default 3.0pt)"},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "document page count, metadata, and per-page geometry summary",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			out := infoJSON{Pages: doc.PageCount(), Metadata: metadataOutput(doc.Metadata())}
			var totalChars, totalTables int
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				chars, err := p.Chars()
				if err != nil {
					return fatalKind(err)
				}
				lines, err := p.Lines()
				if err != nil {
					return fatalKind(err)
				}
				rects, err := p.Rects()
				if err != nil {
					return fatalKind(err)
				}
				curves, err := p.Curves()
				if err != nil {
					return fatalKind(err)
				}
				images, err := p.Images()
				if err != nil {
					return fatalKind(err)
				}
				tables, err := p.FindTables(table.Settings{})
				if err != nil {
					return fatalKind(err)
				}
				totalChars += len(chars)
				totalTables += len(tables)
				out.PageInfo = append(out.PageInfo, pageInfoJSON{
					Page:     n,
					Width:    p.DisplayBBox.Width(),
					Height:   p.DisplayBBox.Height(),
					Rotation: p.Rotation,
					Chars:    len(chars),
					Lines:    len(lines),
					Rects:    len(rects),
					Curves:   len(curves),
					Images:   len(images),
				})
			}
			out.Summary = summaryJSON{TotalChars: totalChars, TotalTables: totalTables}

			if wantsJSON(cmd) {
				return emitJSON(out)
			}
			fmt.Printf("%d pages\n", out.Pages)
			if out.Metadata.Title != "" {
				fmt.Printf("title: %s\n", out.Metadata.Title)
			}
			if out.Metadata.Author != "" {
				fmt.Printf("author: %s\n", out.Metadata.Author)
			}
			for _, pi := range out.PageInfo {
				fmt.Printf("page %d: %.0fx%.0f rot=%d chars=%d lines=%d rects=%d curves=%d images=%d\n",
					pi.Page, pi.Width, pi.Height, pi.Rotation, pi.Chars, pi.Lines, pi.Rects, pi.Curves, pi.Images)
			}
			fmt.Printf("total chars: %d, total tables: %d\n", out.Summary.TotalChars, out.Summary.TotalTables)
			return nil
		},
	}
}

func textCommand() *cli.Command {
	flags := append(toleranceFlags(),
		&cli.BoolFlag{Name: "layout", Usage: "preserve horizontal/vertical spacing instead of flowing text"},
	)
	return &cli.Command{
		Name:  "text",
		Usage: "extract flowed or layout-preserving page text",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			var parts []string
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				text, err := p.ExtractText(page.TextOptions{
					Words:  wordOptionsFromFlags(cmd),
					Layout: cmd.Bool("layout"),
				})
				if err != nil {
					return fatalKind(err)
				}
				parts = append(parts, text)
			}
			joined := strings.Join(parts, "\n\f\n")

			if wantsJSON(cmd) {
				return emitJSON(map[string]string{"text": joined})
			}
			fmt.Println(joined)
			return nil
		},
	}
}

func charsCommand() *cli.Command {
	return &cli.Command{
		Name:  "chars",
		Usage: "extract every character with position, font, and color",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			var out []charJSON
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				chars, err := p.Chars()
				if err != nil {
					return fatalKind(err)
				}
				for _, c := range chars {
					out = append(out, charOutput(c))
				}
			}

			if wantsJSON(cmd) {
				return emitJSON(out)
			}
			for _, c := range out {
				fmt.Printf("%-4q %-10s %6.2f %6.2f %6.2f %6.2f %s\n",
					c.Text, c.FontName, c.BBox.X0, c.BBox.Top, c.BBox.X1, c.BBox.Bottom, c.Direction)
			}
			return nil
		},
	}
}

func wordsCommand() *cli.Command {
	return &cli.Command{
		Name:  "words",
		Usage: "extract words (runs of characters with no intervening gap)",
		Flags: toleranceFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			var out []wordJSON
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				ws, err := p.ExtractWords(wordOptionsFromFlags(cmd))
				if err != nil {
					return fatalKind(err)
				}
				for _, w := range ws {
					out = append(out, wordOutput(w))
				}
			}

			if wantsJSON(cmd) {
				return emitJSON(out)
			}
			for _, w := range out {
				fmt.Printf("%-20q %6.2f %6.2f %6.2f %6.2f %s\n",
					w.Text, w.BBox.X0, w.BBox.Top, w.BBox.X1, w.BBox.Bottom, w.Direction)
			}
			return nil
		},
	}
}

func tableSettingsFromFlags(cmd *cli.Command) table.Settings {
	strategy := table.Lattice
	switch strings.ToLower(cmd.String("strategy")) {
	case "stream":
		strategy = table.Stream
	case "explicit":
		strategy = table.Explicit
	}
	return table.Settings{
		Strategy:      strategy,
		SnapTolerance: cmd.Float64("snap-tolerance"),
		JoinTolerance: cmd.Float64("join-tolerance"),
		EdgeMinLength: cmd.Float64("edge-min-length"),
	}
}

func tablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "detect tables and attribute text to each cell",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "strategy", Value: "lattice", Usage: "lattice, stream, or explicit"},
			&cli.Float64Flag{Name: "snap-tolerance", Usage: "merge near-identical edge coordinates (default 3.0pt)"},
			&cli.Float64Flag{Name: "join-tolerance", Usage: "join collinear edges (default 3.0pt)"},
			&cli.Float64Flag{Name: "edge-min-length", Usage: "drop edges shorter than this (default 3.0pt)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			settings := tableSettingsFromFlags(cmd)
			var out []tableJSON
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				tables, err := p.FindTables(settings)
				if err != nil {
					return fatalKind(err)
				}
				for _, t := range tables {
					out = append(out, tableOutput(t))
				}
			}

			if wantsJSON(cmd) {
				return emitJSON(out)
			}
			for i, t := range out {
				fmt.Printf("table %d: %d rows\n", i, len(t.Rows))
				for _, row := range t.Rows {
					var cells []string
					for _, c := range row {
						if c.Text != nil {
							cells = append(cells, *c.Text)
						} else {
							cells = append(cells, "")
						}
					}
					fmt.Println(strings.Join(cells, " | "))
				}
			}
			return nil
		},
	}
}

func edgesCommand() *cli.Command {
	return &cli.Command{
		Name:  "edges",
		Usage: "list the page's unified horizontal/vertical/diagonal edges",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			type edgeJSON struct {
				BBox bboxJSON `json:"bbox"`
			}
			var out []edgeJSON
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				es, err := p.Edges()
				if err != nil {
					return fatalKind(err)
				}
				for _, e := range es {
					out = append(out, edgeJSON{BBox: bboxJSON{X0: e.X0, Top: e.Top, X1: e.X1, Bottom: e.Bottom}})
				}
			}

			if wantsJSON(cmd) {
				return emitJSON(out)
			}
			for _, e := range out {
				fmt.Printf("%6.2f %6.2f %6.2f %6.2f\n", e.BBox.X0, e.BBox.Top, e.BBox.X1, e.BBox.Bottom)
			}
			return nil
		},
	}
}

func linesCommand() *cli.Command {
	return &cli.Command{
		Name:  "lines",
		Usage: "list the page's stroked non-rectangular line segments",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			var out []bboxJSON
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				ls, err := p.Lines()
				if err != nil {
					return fatalKind(err)
				}
				for _, l := range ls {
					out = append(out, bboxJSON{X0: l.X0, Top: l.Top, X1: l.X1, Bottom: l.Bottom})
				}
			}

			if wantsJSON(cmd) {
				return emitJSON(out)
			}
			for _, b := range out {
				fmt.Printf("%6.2f %6.2f %6.2f %6.2f\n", b.X0, b.Top, b.X1, b.Bottom)
			}
			return nil
		},
	}
}

func rectsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rects",
		Usage: "list the page's axis-aligned rectangles",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, pages, err := openDoc(cmd)
			if err != nil {
				return fatalKind(err)
			}
			defer doc.Close()

			var out []bboxJSON
			for _, n := range pages {
				p, err := doc.Page(n)
				if err != nil {
					return fatalKind(err)
				}
				rs, err := p.Rects()
				if err != nil {
					return fatalKind(err)
				}
				for _, r := range rs {
					out = append(out, bboxOf(r.BBox))
				}
			}

			if wantsJSON(cmd) {
				return emitJSON(out)
			}
			for _, b := range out {
				fmt.Printf("%6.2f %6.2f %6.2f %6.2f\n", b.X0, b.Top, b.X1, b.Bottom)
			}
			return nil
		},
	}
}
