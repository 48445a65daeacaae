package ooxml

// OOXML measures: twentieths of a point (twips) for paragraph geometry and
// half points for font sizes. CSS pixels are 1/96 inch.
const (
	TwipsPerPoint = 20
	PointsPerInch = 72
	PixelsPerInch = 96
)

// TwipsToPoints converts twips to points.
func TwipsToPoints(twips int) float64 {
	return float64(twips) / TwipsPerPoint
}

// TwipsToPixels converts twips to CSS pixels.
func TwipsToPixels(twips int) float64 {
	return TwipsToPoints(twips) * PixelsPerInch / PointsPerInch
}

// HalfPointsToPoints converts a w:sz value to points.
func HalfPointsToPoints(halfPoints int) float64 {
	return float64(halfPoints) / 2
}

// PointsToPixels converts points to CSS pixels.
func PointsToPixels(pt float64) float64 {
	return pt * PixelsPerInch / PointsPerInch
}

// EighthPointsToPoints converts border widths (w:sz of w:bdr) to points.
func EighthPointsToPoints(v int) float64 {
	return float64(v) / 8
}
