package spawndata

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Parse extracts placement records from a dataset, picking the format with
// DetectFormat. It never fails: lines or records that do not fit are skipped.
func Parse(text string) []Record {
	if DetectFormat(text) == FormatKeyed {
		return ParseKeyed(text)
	}
	return ParseFlat(text)
}

// DetectFormat reports FormatKeyed when the stream names a "position" or
// "rotation" key anywhere, FormatFlat otherwise.
func DetectFormat(text string) Format {
	if strings.Contains(text, `"position"`) || strings.Contains(text, `"rotation"`) {
		return FormatKeyed
	}
	return FormatFlat
}

// ParseFlat reads the flat-numeric shape: every line holding both brackets is
// treated as [posX,posY,posZ,rotX,rotY,rotZ]. Lines that do not yield exactly
// six numbers are dropped.
func ParseFlat(text string) []Record {
	var records []Record
	for _, line := range splitLines(text) {
		if !strings.Contains(line, "[") || !strings.Contains(line, "]") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == '[' || r == ']' || r == ','
		})
		values := make([]float32, 0, 6)
		for _, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			values = append(values, 0)
			if len(values) > 6 {
				break
			}
			v, ok := parseNumber(f)
			if !ok {
				values = nil
				break
			}
			values[len(values)-1] = v
		}
		if len(values) != 6 {
			continue
		}

		records = append(records, Record{
			Position: mgl32.Vec3{values[0], values[1], values[2]},
			Rotation: mgl32.Vec3{values[3], values[4], values[5]},
		})
	}
	return records
}

// splitLines breaks on both \n and \r, drops empty lines and trims the rest.
func splitLines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	lines := raw[:0]
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// parseNumber accepts plain decimal numbers with an optional exponent, using
// '.' as the separator regardless of locale. Hex floats, NaN and Inf are
// rejected, as is anything that overflows a float32.
func parseNumber(s string) (float32, bool) {
	if !isDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return float32(v), true
}

// isDecimal reports whether s has the shape [+-]digits[.digits][(e|E)[+-]digits]
// with at least one mantissa digit.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}
