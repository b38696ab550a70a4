package spawndata

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParseFlatSingleLine(t *testing.T) {
	records := ParseFlat("[1.5, -2.25, 3, 10, 20.5, -30]")
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Position != (mgl32.Vec3{1.5, -2.25, 3}) {
		t.Errorf("Unexpected position %v", r.Position)
	}
	if r.Rotation != (mgl32.Vec3{10, 20.5, -30}) {
		t.Errorf("Unexpected rotation %v", r.Rotation)
	}
}

func TestParseFlatRoundTrip(t *testing.T) {
	want := []Record{
		{Position: mgl32.Vec3{0.1, 0.2, 0.3}, Rotation: mgl32.Vec3{45, 90, 180}},
		{Position: mgl32.Vec3{-120.75, 44.125, 9}, Rotation: mgl32.Vec3{-1, 0, 359.5}},
		{Position: mgl32.Vec3{1e3, -2e-2, 0}, Rotation: mgl32.Vec3{0, 0, 0}},
	}

	var sb strings.Builder
	sb.WriteString("[\n")
	for _, r := range want {
		fmt.Fprintf(&sb, "  [%g, %g, %g, %g, %g, %g],\n",
			r.Position[0], r.Position[1], r.Position[2],
			r.Rotation[0], r.Rotation[1], r.Rotation[2])
	}
	sb.WriteString("]\n")

	got := ParseFlat(sb.String())
	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Record %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestParseFlatSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"[1,2,3,4,5,6]",
		"[1,2,3,4,5]",                     // too few
		"[1,2,3,4,5,6,7]",                 // too many
		"[1,2,three,4,5,6]",               // not a number
		"1,2,3,4,5,6",                     // no brackets
		"[1,2,3,4,5,6",                    // no closing bracket
		"  [ 7 , 8 , 9 , 1 , 2 , 3 ] ,  ", // padding is trimmed
		"[1,2,3,4,5,6,]",                  // trailing comma is fine
		"[1,,2,3,4,5,6]",                  // empty token is dropped
	}, "\n")

	records := ParseFlat(input)
	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d: %+v", len(records), records)
	}
	if records[1].Position != (mgl32.Vec3{7, 8, 9}) {
		t.Errorf("Expected whitespace-padded line to parse, got %v", records[1].Position)
	}
}

func TestParseFlatRejectsNonDecimalNumbers(t *testing.T) {
	input := strings.Join([]string{
		"[0x1p2,1,2,3,4,5]",
		"[NaN,1,2,3,4,5]",
		"[1,Inf,2,3,4,5]",
		"[1,2,-Infinity,3,4,5]",
		"[1e39,1,2,3,4,5]",
		"[1e,1,2,3,4,5]",
		"[.,1,2,3,4,5]",
		"[1.5e2,-.25,+3,4E-1,5.,6]",
	}, "\n")

	records := ParseFlat(input)
	if len(records) != 1 {
		t.Fatalf("Expected only the decimal line to parse, got %d: %+v", len(records), records)
	}
	want := Record{
		Position: mgl32.Vec3{150, -0.25, 3},
		Rotation: mgl32.Vec3{0.4, 5, 6},
	}
	if records[0] != want {
		t.Errorf("Expected %+v, got %+v", want, records[0])
	}
}

func TestParseFlatIgnoresLocaleStyleDecimals(t *testing.T) {
	// "1,5" splits into two tokens, so the line no longer has six numbers.
	records := ParseFlat("[1,5, 2, 3, 4, 5, 6]")
	if len(records) != 0 {
		t.Errorf("Expected comma-decimal line to be dropped, got %+v", records)
	}
}

func TestParseFlatCarriageReturns(t *testing.T) {
	records := ParseFlat("[1,2,3,4,5,6]\r\n[7,8,9,10,11,12]\r\r\n")
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].Rotation != (mgl32.Vec3{10, 11, 12}) {
		t.Errorf("Unexpected rotation %v", records[1].Rotation)
	}
}

func TestParseFlatEmpty(t *testing.T) {
	if got := ParseFlat(""); len(got) != 0 {
		t.Errorf("Expected no records, got %d", len(got))
	}
}

func TestDetectFormat(t *testing.T) {
	if f := DetectFormat("[1,2,3,4,5,6]"); f != FormatFlat {
		t.Errorf("Expected flat, got %v", f)
	}
	if f := DetectFormat(`{ "position": { "x": 1 } }`); f != FormatKeyed {
		t.Errorf("Expected keyed, got %v", f)
	}
	if f := DetectFormat(`{ "rotation": {} }`); f != FormatKeyed {
		t.Errorf("Expected keyed, got %v", f)
	}
}

func TestParseDispatchesOnFormat(t *testing.T) {
	flat := Parse("[1,2,3,4,5,6]")
	if len(flat) != 1 || flat[0].Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Unexpected flat result %+v", flat)
	}

	keyed := Parse(`{
		"path": "Trees/A",
		"position": {
			"x": 4,
			"y": 5,
			"z": 6
		}
	}`)
	if len(keyed) != 1 || keyed[0].Position != (mgl32.Vec3{4, 5, 6}) || keyed[0].Path != "Trees/A" {
		t.Errorf("Unexpected keyed result %+v", keyed)
	}
}

func BenchmarkParseFlat(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 20000; i++ {
		fmt.Fprintf(&sb, "[%d.5, %d.25, -%d, 12.5, %d, 0],\n", i, i*2, i, i%360)
	}
	text := sb.String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ParseFlat(text)
	}
}
