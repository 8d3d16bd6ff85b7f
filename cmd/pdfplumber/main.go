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

// Command pdfplumber extracts characters, words, lines, rectangles,
// curves, tables, and metadata from PDF documents, per spec.md §6.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/pdfplumber-go/pdfplumber/backend/pdfcpu"
	"github.com/pdfplumber-go/pdfplumber/document"
	"github.com/pdfplumber-go/pdfplumber/pderr"
)

func main() {
	root := &cli.Command{
		Name:  "pdfplumber",
		Usage: "extract structured content from PDF documents",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pages", Persistent: true, Usage: "1-indexed page selection, e.g. \"1,3-5,8\" (default: all pages)"},
			&cli.StringFlag{Name: "format", Persistent: true, Value: "text", Usage: "output format: text or json"},
			&cli.StringFlag{Name: "password", Persistent: true, Usage: "document password"},
		},
		Commands: []*cli.Command{
			infoCommand(),
			textCommand(),
			charsCommand(),
			wordsCommand(),
			tablesCommand(),
			edgesCommand(),
			linesCommand(),
			rectsCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pdfplumber:", err)
		os.Exit(1)
	}
}

// openDoc opens the FILE positional argument of cmd and resolves the
// --pages selector against its page count.
func openDoc(cmd *cli.Command) (*document.Document, []int, error) {
	path := cmd.Args().First()
	if path == "" {
		return nil, nil, fmt.Errorf("usage: pdfplumber %s [options] FILE", cmd.Name)
	}
	doc, err := document.Open(path, cmd.String("password"), pdfcpu.Open)
	if err != nil {
		return nil, nil, err
	}
	pages, err := parsePageRange(cmd.String("pages"), doc.PageCount())
	if err != nil {
		doc.Close()
		return nil, nil, err
	}
	return doc, pages, nil
}

func wantsJSON(cmd *cli.Command) bool { return cmd.String("format") == "json" }

// emitJSON writes v to stdout as indented JSON, the shape spec.md §6's
// schemas describe.
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fatalKind maps a pderr.Kind to the CLI's single fatal exit path: every
// error kind exits 1 per spec.md §6, but the message is kind-specific so a
// password problem doesn't read like a parse failure.
func fatalKind(err error) error {
	switch pderr.KindOf(err) {
	case pderr.KindEncrypted:
		return fmt.Errorf("document is encrypted or the password is invalid: %w", err)
	case pderr.KindMalformed:
		return fmt.Errorf("malformed PDF: %w", err)
	case pderr.KindUnsupportedFeature:
		return fmt.Errorf("unsupported PDF feature: %w", err)
	case pderr.KindPage:
		return fmt.Errorf("page extraction failed: %w", err)
	default:
		return err
	}
}
