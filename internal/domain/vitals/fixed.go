package vitals

import "math"

// FracBits is the number of fractional bits in a Fixed value
const FracBits = 16

// One is 1.0 in fixed-point units
const One Fixed = 1 << FracBits

// MaxWhole is the largest integer part a Fixed value can carry
const MaxWhole = math.MaxInt16

// Fixed is a signed 16.16 fixed-point number.
// The integer part lives in the high 16 bits, the fraction in the low 16 bits.
type Fixed int32

// FromInt converts a whole number to fixed point, saturating outside the int32 range
func FromInt(n int) Fixed {
	return saturate(int64(n) << FracBits)
}

// FromParts recombines an integer part and fractional accumulator
func FromParts(whole int, frac uint16) Fixed {
	return saturate(int64(whole)<<FracBits + int64(frac))
}

// Parts splits the value into integer part and fraction.
// Arithmetic shift keeps negative values correct: -0.25 is (-1, 0xC000).
func (f Fixed) Parts() (int, uint16) {
	return int(int32(f) >> FracBits), uint16(int32(f) & 0xFFFF)
}

// Int returns the integer part (floor)
func (f Fixed) Int() int {
	whole, _ := f.Parts()
	return whole
}

// Float is for display and logging only
func (f Fixed) Float() float64 {
	return float64(f) / float64(One)
}

// SaturatingAdd adds two fixed values, clamping to the representable range
// instead of wrapping around.
func SaturatingAdd(a, b Fixed) Fixed {
	return saturate(int64(a) + int64(b))
}

// Saturate clamps a wide intermediate result into the Fixed range
func Saturate(v int64) Fixed {
	return saturate(v)
}

func saturate(v int64) Fixed {
	switch {
	case v > math.MaxInt32:
		return Fixed(math.MaxInt32)
	case v < math.MinInt32:
		return Fixed(math.MinInt32)
	default:
		return Fixed(v)
	}
}
