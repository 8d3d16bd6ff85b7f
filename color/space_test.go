package color

import "testing"

func TestResolveDeviceSpaces(t *testing.T) {
	if got := DeviceGray.Resolve([]float64{0.5}); got.Space != SpaceGray || got.Gray != 0.5 {
		t.Errorf("got %+v", got)
	}
	if got := DeviceRGB.Resolve([]float64{1, 0, 0}); got.Space != SpaceRGB || got.R != 1 {
		t.Errorf("got %+v", got)
	}
	if got := DeviceCMYK.Resolve([]float64{0, 0, 0, 1}); got.Space != SpaceCMYK || got.K != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestResolveICCBasedFallsBackToAlternate(t *testing.T) {
	cs := &ColorSpace{Kind: KindICCBased, N: 3, Alternate: DeviceRGB}
	got := cs.Resolve([]float64{0, 1, 0})
	if got.Space != SpaceRGB || got.G != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestResolveICCBasedWithoutAlternateGuessesByArity(t *testing.T) {
	cs := &ColorSpace{Kind: KindICCBased, N: 4}
	got := cs.Resolve([]float64{0, 0, 0, 0})
	if got.Space != SpaceCMYK {
		t.Errorf("got %+v, want CMYK guessed from 4 components", got)
	}
}

func TestResolveIndexedLooksUpBaseSpace(t *testing.T) {
	cs := &ColorSpace{
		Kind:   KindIndexed,
		Base:   DeviceRGB,
		HiVal:  1,
		Lookup: []byte{0, 0, 0, 255, 255, 255}, // index 0 = black, index 1 = white
	}
	black := cs.Resolve([]float64{0})
	if black.Space != SpaceRGB || black.R != 0 || black.G != 0 || black.B != 0 {
		t.Errorf("got %+v, want black", black)
	}
	white := cs.Resolve([]float64{1})
	if white.R != 1 || white.G != 1 || white.B != 1 {
		t.Errorf("got %+v, want white", white)
	}
}

func TestResolveIndexedOutOfRangeFallsBackToOther(t *testing.T) {
	cs := &ColorSpace{Kind: KindIndexed, Base: DeviceGray, HiVal: 1, Lookup: []byte{0, 255}}
	got := cs.Resolve([]float64{5})
	if got.Space != SpaceOther {
		t.Errorf("got %+v, want SpaceOther for out-of-range index", got)
	}
}

func TestResolveSeparationReturnsRawTint(t *testing.T) {
	cs := &ColorSpace{Kind: KindSeparation, N: 1, Alternate: DeviceCMYK}
	got := cs.Resolve([]float64{0.7})
	if got.Space != SpaceOther || len(got.Components) != 1 || got.Components[0] != 0.7 {
		t.Errorf("got %+v", got)
	}
}

func TestNumComponentsForIndexedAndDeviceN(t *testing.T) {
	if got := (&ColorSpace{Kind: KindIndexed, Base: DeviceRGB}).NumComponents(); got != 1 {
		t.Errorf("indexed NumComponents = %d, want 1", got)
	}
	if got := (&ColorSpace{Kind: KindDeviceN, N: 5}).NumComponents(); got != 5 {
		t.Errorf("DeviceN NumComponents = %d, want 5", got)
	}
}

func TestResolveDeviceByArityFallback(t *testing.T) {
	got := (*ColorSpace)(nil).Resolve([]float64{1, 1, 1})
	if got.Space != SpaceRGB {
		t.Errorf("got %+v, want RGB guessed from nil space + 3 operands", got)
	}
}
