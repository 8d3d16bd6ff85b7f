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

package color

// SpaceKind identifies a PDF color space family. Modeled as a sum type
// rather than an interface hierarchy: a resolver only ever needs to switch
// on Kind and recurse into Alternate, it never needs virtual dispatch.
type SpaceKind int

const (
	KindDeviceGray SpaceKind = iota
	KindDeviceRGB
	KindDeviceCMYK
	KindICCBased
	KindIndexed
	KindSeparation
	KindDeviceN
	KindPattern
	KindOther
)

// ColorSpace describes a resource-dictionary /ColorSpace entry. Only the
// fields relevant to Kind are populated:
//
//	ICCBased:   N, Alternate (the /Alternate entry, or a device space guessed
//	            from N if absent)
//	Indexed:    Base (the underlying space), HiVal, Lookup (the raw color
//	            table, HiVal+1 entries of Base.NumComponents() bytes each)
//	Separation: Alternate, N (always 1 for Separation, >1 for DeviceN)
//	DeviceN:    Alternate, N (number of named colorants)
//	Pattern:    Underlying (the pattern's own color space for uncolored
//	            tiling patterns, nil for colored patterns)
type ColorSpace struct {
	Kind       SpaceKind
	N          int
	Alternate  *ColorSpace
	Base       *ColorSpace
	Underlying *ColorSpace
	HiVal      int
	Lookup     []byte
}

// DeviceGray, DeviceRGB and DeviceCMYK are the three built-in device spaces.
var (
	DeviceGray = &ColorSpace{Kind: KindDeviceGray, N: 1}
	DeviceRGB  = &ColorSpace{Kind: KindDeviceRGB, N: 3}
	DeviceCMYK = &ColorSpace{Kind: KindDeviceCMYK, N: 4}
)

// NumComponents returns how many color components an `sc`/`scn` operator
// supplies when this space is current, recursing into Alternate/Base for
// the indirect spaces.
func (cs *ColorSpace) NumComponents() int {
	if cs == nil {
		return 1
	}
	switch cs.Kind {
	case KindDeviceGray:
		return 1
	case KindDeviceRGB:
		return 3
	case KindDeviceCMYK:
		return 4
	case KindICCBased:
		if cs.N > 0 {
			return cs.N
		}
		return cs.Alternate.NumComponents()
	case KindIndexed:
		return 1 // a single index value selects a row in the lookup table
	case KindSeparation, KindDeviceN:
		return cs.N
	case KindPattern:
		if cs.Underlying != nil {
			return cs.Underlying.NumComponents()
		}
		return 0
	default:
		return cs.N
	}
}

// Resolve converts operand components (as supplied to sc/scn/g/rg/k) in cs
// into a device Color, recursing through ICCBased/Indexed/Separation/
// DeviceN to an alternate or base space exactly as spec.md requires. tint
// functions for Separation/DeviceN are not evaluated (that requires parsing
// the PDF Function at the operand, out of scope for shape/text extraction,
// which only needs approximate color); the returned Color is SpaceOther
// carrying the raw tint values in that case so callers can still detect
// "not the default color" without a false RGB/CMYK reading.
func (cs *ColorSpace) Resolve(components []float64) Color {
	if cs == nil {
		return resolveDeviceByArity(components)
	}
	switch cs.Kind {
	case KindDeviceGray:
		if len(components) >= 1 {
			return NewGray(components[0])
		}
	case KindDeviceRGB:
		if len(components) >= 3 {
			return NewRGB(components[0], components[1], components[2])
		}
	case KindDeviceCMYK:
		if len(components) >= 4 {
			return NewCMYK(components[0], components[1], components[2], components[3])
		}
	case KindICCBased:
		if cs.Alternate != nil {
			return cs.Alternate.Resolve(components)
		}
		return resolveDeviceByArity(components)
	case KindIndexed:
		return cs.resolveIndexed(components)
	case KindSeparation, KindDeviceN:
		return NewOther(components)
	case KindPattern:
		if cs.Underlying != nil {
			return cs.Underlying.Resolve(components)
		}
		return NewOther(components)
	}
	return NewOther(components)
}

func (cs *ColorSpace) resolveIndexed(components []float64) Color {
	if cs.Base == nil || len(components) == 0 {
		return NewOther(components)
	}
	index := int(components[0])
	if index < 0 || index > cs.HiVal {
		return NewOther(components)
	}
	n := cs.Base.NumComponents()
	offset := index * n
	if offset+n > len(cs.Lookup) {
		return NewOther(components)
	}
	base := make([]float64, n)
	for i := 0; i < n; i++ {
		base[i] = float64(cs.Lookup[offset+i]) / 255
	}
	return cs.Base.Resolve(base)
}

// resolveDeviceByArity handles the family-less color operators (g, rg, k)
// which imply their device space from the operand count alone.
func resolveDeviceByArity(components []float64) Color {
	switch len(components) {
	case 1:
		return NewGray(components[0])
	case 3:
		return NewRGB(components[0], components[1], components[2])
	case 4:
		return NewCMYK(components[0], components[1], components[2], components[3])
	default:
		return NewOther(components)
	}
}
