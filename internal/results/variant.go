package results

import "image/color"

// Variant identifies one of the three compared data-copying strategies.
type Variant string

const (
	TwoCopy  Variant = "A1"
	OneCopy  Variant = "A2"
	ZeroCopy Variant = "A3"
)

// Variants returns all variants in their canonical display order. Every
// chart iterates this slice so colors and bar offsets stay comparable
// across images.
func Variants() []Variant {
	return []Variant{TwoCopy, OneCopy, ZeroCopy}
}

// Label returns the human-readable name shown in chart legends.
func (v Variant) Label() string {
	switch v {
	case TwoCopy:
		return "Two-Copy"
	case OneCopy:
		return "One-Copy"
	case ZeroCopy:
		return "Zero-Copy"
	}
	return string(v)
}

// Color returns the fixed display color for the variant.
func (v Variant) Color() color.RGBA {
	switch v {
	case TwoCopy:
		return color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	case OneCopy:
		return color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	case ZeroCopy:
		return color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	}
	return color.RGBA{A: 0xff}
}

// FileName returns the CSV file the measurement stage writes for this
// variant, relative to the results directory.
func (v Variant) FileName() string {
	switch v {
	case TwoCopy:
		return "MT25033_Part_B_TwoCopy.csv"
	case OneCopy:
		return "MT25033_Part_B_OneCopy.csv"
	case ZeroCopy:
		return "MT25033_Part_B_ZeroCopy.csv"
	}
	return ""
}
