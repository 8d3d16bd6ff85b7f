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
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// parsePageRange parses a --pages selector ("1,3-5,8") into a sorted,
// deduplicated list of 1-indexed page numbers bounded by total. An empty
// selector means every page. 0, non-numeric entries, inverted ranges, and
// numbers past total are all reported as errors rather than silently
// dropped, per spec.md §6 ("bad page range" is a fatal CLI error).
func parsePageRange(selector string, total int) ([]int, error) {
	if strings.TrimSpace(selector) == "" {
		out := make([]int, total)
		for i := range out {
			out[i] = i + 1
		}
		return out, nil
	}

	seen := make(map[int]bool)
	var out []int
	add := func(p int) error {
		if p < 1 {
			return fmt.Errorf("invalid page number %d: pages are 1-indexed", p)
		}
		if p > total {
			return fmt.Errorf("page %d out of range (document has %d pages)", p, total)
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
		return nil
	}

	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.IndexByte(part, '-'); i > 0 {
			lo, err := strconv.Atoi(strings.TrimSpace(part[:i]))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(part[i+1:]))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			if hi < lo {
				return nil, fmt.Errorf("invalid page range %q: end before start", part)
			}
			for p := lo; p <= hi; p++ {
				if err := add(p); err != nil {
					return nil, err
				}
			}
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		if err := add(p); err != nil {
			return nil, err
		}
	}

	sort.Ints(out)
	return out, nil
}
