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

package content

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// A Scanner breaks a content stream into tokens: Integer, Real, String,
// Name, Array, Dict, Boolean, Operator, or nil.
type Scanner struct {
	src       io.Reader
	buf       []byte
	pos, used int
	ahead     []byte
	crSeen    bool
	err       error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		src: r,
		buf: make([]byte, 4096),
	}
}

// ScanError reports a malformed token. The interpreter (C8) treats this as
// a recoverable condition: it emits a warning and stops interpreting the
// rest of that content stream, keeping the events already reported.
type ScanError struct {
	Message string
}

func (e *ScanError) Error() string { return e.Message }

// Next returns the next complete token from the input: arrays and
// dictionaries are assembled from their bracket/angle-bracket structural
// tokens before being returned as a single Array or Dict object.
func (s *Scanner) Next() (Object, error) {
	type stackEntry struct {
		isDict bool
		data   []Object
	}
	var stack []*stackEntry
	for {
		obj, err := s.next()
		if err != nil {
			return nil, err
		}

	retry:
		switch obj {
		case Operator("<<"):
			stack = append(stack, &stackEntry{isDict: true})
			continue
		case Operator(">>"):
			if len(stack) == 0 || !stack[len(stack)-1].isDict {
				return nil, &ScanError{"unexpected '>>'"}
			}
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(entry.data)%2 != 0 {
				return nil, &ScanError{"odd number of dict entries"}
			}
			dict := Dict{}
			for i := 0; i < len(entry.data); i += 2 {
				key, ok := entry.data[i].(Name)
				if !ok {
					return nil, &ScanError{"non-name dict key"}
				}
				if entry.data[i+1] == nil {
					continue
				}
				dict[key] = entry.data[i+1]
			}
			obj = dict
			goto retry
		case Operator("["):
			stack = append(stack, &stackEntry{})
			continue
		case Operator("]"):
			if len(stack) == 0 || stack[len(stack)-1].isDict {
				return nil, &ScanError{"unexpected ']'"}
			}
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			obj = Array(entry.data)
			goto retry
		default:
			if len(stack) == 0 {
				return obj, nil
			}
			stack[len(stack)-1].data = append(stack[len(stack)-1].data, obj)
		}
	}
}

func (s *Scanner) next() (Object, error) {
	if err := s.skipWhiteSpace(); err != nil {
		return nil, err
	}
	b, err := s.peek()
	if err != nil {
		return nil, err
	}
	switch b {
	case '(':
		return s.readString()
	case '<':
		bb := s.peekN(2)
		if string(bb) == "<<" {
			s.skipRequiredByte('<')
			s.skipRequiredByte('<')
			return Operator("<<"), nil
		}
		return s.readHexString()
	case '>':
		bb := s.peekN(2)
		if string(bb) == ">>" {
			s.skipRequiredByte('>')
			s.skipRequiredByte('>')
			return Operator(">>"), nil
		}
		err := s.err
		if err == nil {
			err = &ScanError{"unexpected '>'"}
		}
		return nil, err
	case '[':
		s.nextByte()
		return Operator("["), nil
	case ']':
		s.nextByte()
		return Operator("]"), nil
	case '/':
		s.skipRequiredByte('/')
		return s.readName()
	default:
		s.nextByte()
		opBytes := []byte{b}
		if class[b] == regular {
			for {
				b, err := s.peek()
				if err == io.EOF {
					break
				} else if err != nil {
					return nil, err
				}
				if class[b] != regular {
					break
				}
				s.nextByte()
				opBytes = append(opBytes, b)
			}
		}

		if x, err := parseNumber(opBytes); err == nil {
			return x, nil
		}

		switch string(opBytes) {
		case "false":
			return Boolean(false), nil
		case "true":
			return Boolean(true), nil
		case "null":
			return nil, nil
		}

		return Operator(opBytes), nil
	}
}

func (s *Scanner) readString() (String, error) {
	if err := s.skipRequiredByte('('); err != nil {
		return nil, err
	}
	var res []byte
	depth := 1
	ignoreLF := false
	for {
		b, err := s.nextByte()
		if err != nil {
			return nil, err
		}
		if ignoreLF && b == 10 {
			continue
		}
		ignoreLF = false
		switch b {
		case '(':
			depth++
			res = append(res, b)
		case ')':
			depth--
			if depth == 0 {
				return String(res), nil
			}
			res = append(res, b)
		case '\\':
			b, err = s.nextByte()
			if err != nil {
				return nil, err
			}
			switch b {
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '(', ')', '\\':
				res = append(res, b)
			case 10: // LF
			case 13: // CR or CR+LF
				ignoreLF = true
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for i := 0; i < 2; i++ {
					b, err = s.peek()
					if err == io.EOF {
						break
					} else if err != nil {
						return nil, err
					}
					if b < '0' || b > '7' {
						break
					}
					s.nextByte()
					oct = oct*8 + (b - '0')
				}
				res = append(res, oct)
			default:
				res = append(res, b)
			}
		default:
			res = append(res, b)
		}
	}
}

func (s *Scanner) readHexString() (String, error) {
	if err := s.skipRequiredByte('<'); err != nil {
		return nil, err
	}

	var res []byte
	first := true
	var hi byte
readLoop:
	for {
		b, err := s.nextByte()
		if err != nil {
			return nil, err
		}
		var lo byte
		switch {
		case b == '>':
			break readLoop
		case b <= 32:
			continue
		case b >= '0' && b <= '9':
			lo = b - '0'
		case b >= 'A' && b <= 'F':
			lo = b - 'A' + 10
		case b >= 'a' && b <= 'f':
			lo = b - 'a' + 10
		default:
			return nil, &ScanError{fmt.Sprintf("invalid hex digit %q", b)}
		}
		if first {
			hi = lo << 4
			first = false
		} else {
			res = append(res, hi|lo)
			first = true
		}
	}
	if !first {
		res = append(res, hi)
	}

	return String(res), nil
}

// readName reads a PDF name object (without the leading slash), decoding
// #xx hex escapes.
func (s *Scanner) readName() (Name, error) {
	var name []byte
	hex := 0
	var high byte
	for {
		if hex > 0 {
			c, err := s.nextByte()
			if err != nil {
				return "", err
			}
			var low byte
			switch {
			case c >= '0' && c <= '9':
				low = c - '0'
			case c >= 'A' && c <= 'F':
				low = c - 'A' + 10
			case c >= 'a' && c <= 'f':
				low = c - 'a' + 10
			default:
				return "", &ScanError{fmt.Sprintf("invalid hex digit %q", c)}
			}
			switch hex {
			case 2:
				high = low << 4
			case 1:
				name = append(name, high|low)
			}
			hex--
			continue
		}

		b, err := s.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}

		if b == '#' {
			s.nextByte()
			hex = 2
			continue
		} else if class[b] != regular {
			break
		}
		name = append(name, b)
		s.nextByte()
	}
	return Name(name), nil
}

func (s *Scanner) skipWhiteSpace() error {
	for {
		b, err := s.peek()
		if err != nil {
			return err
		}
		if b <= 32 {
			s.nextByte()
		} else if b == '%' {
			s.skipComment()
		} else {
			return nil
		}
	}
}

func (s *Scanner) skipComment() {
	if err := s.skipRequiredByte('%'); err != nil {
		return
	}
	for {
		b, err := s.peek()
		if b == 10 || b == 13 || err != nil {
			break
		}
		s.nextByte()
	}
}

// SkipInlineImageData consumes the raw sample data of a BI/ID/EI inline
// image, called by the interpreter (C8) right after it reads the "ID"
// operator. Inline image data is binary and not part of the normal object
// grammar, so it cannot be tokenized by Next; this reads bytes directly
// until a whitespace-delimited "EI" is found, per PDF 32000-1:2008 §8.9.7.
// The returned bytes exclude the single whitespace byte that must precede
// "EI" and the "EI" token itself.
func (s *Scanner) SkipInlineImageData() ([]byte, error) {
	var data []byte
	for {
		b, err := s.nextByte()
		if err != nil {
			return data, err
		}
		if b == 'E' {
			next := s.peekN(1)
			if len(next) == 1 && next[0] == 'I' {
				if len(data) > 0 && class[data[len(data)-1]] == space {
					s.nextByte() // consume 'I'
					return data[:len(data)-1], nil
				}
			}
		}
		data = append(data, b)
	}
}

func (s *Scanner) skipRequiredByte(expected byte) error {
	seen, err := s.nextByte()
	if err != nil {
		return err
	}
	if seen != expected {
		return &ScanError{fmt.Sprintf("expected %q, got %q", expected, seen)}
	}
	return nil
}

func (s *Scanner) peek() (byte, error) {
	if len(s.ahead) == 0 {
		b, err := s.readByte()
		if err != nil {
			return 0, err
		}
		s.ahead = append(s.ahead, b)
	}
	return s.ahead[0], nil
}

func (s *Scanner) peekN(n int) []byte {
	for len(s.ahead) < n {
		b, err := s.readByte()
		if err != nil {
			return s.ahead
		}
		s.ahead = append(s.ahead, b)
	}
	return s.ahead[:n]
}

func (s *Scanner) nextByte() (byte, error) {
	var b byte
	if len(s.ahead) > 0 {
		b = s.ahead[0]
		copy(s.ahead, s.ahead[1:])
		s.ahead = s.ahead[:len(s.ahead)-1]
	} else {
		var err error
		b, err = s.readByte()
		if err != nil {
			return 0, err
		}
	}
	s.crSeen = b == 13
	return b, nil
}

func (s *Scanner) readByte() (byte, error) {
	for s.pos >= s.used {
		if err := s.refill(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

func (s *Scanner) refill() error {
	if s.err != nil {
		return s.err
	}
	s.used = copy(s.buf, s.buf[s.pos:s.used])
	s.pos = 0

	n, err := s.src.Read(s.buf[s.used:])
	s.used += n
	if err != nil {
		s.err = err
		if n > 0 {
			err = nil
		}
	}
	return err
}

func parseNumber(s []byte) (Object, error) {
	if x, err := strconv.ParseInt(string(s), 10, 64); err == nil {
		return Integer(x), nil
	}

	isSimple := true
	for i, c := range s {
		if i == 0 && (c == '+' || c == '-') {
			continue
		}
		if c == '.' {
			continue
		}
		if c < '0' || c > '9' {
			isSimple = false
			break
		}
	}

	if isSimple {
		if y, err := strconv.ParseFloat(string(s), 64); err == nil && !math.IsInf(y, 0) && !math.IsNaN(y) {
			return Real(y), nil
		}
	}

	return nil, &ScanError{fmt.Sprintf("invalid number %q", s)}
}

type characterClass byte

const (
	regular characterClass = iota
	space
	delimiter
)

var class = buildClassTable()

func buildClassTable() [256]characterClass {
	var t [256]characterClass
	for i := range t {
		t[i] = regular
	}
	for _, b := range []byte{0, 9, 10, 12, 13, 32} {
		t[b] = space
	}
	for _, b := range []byte{'%', '(', ')', '/', '<', '>', '[', ']', '{', '}'} {
		t[b] = delimiter
	}
	return t
}
