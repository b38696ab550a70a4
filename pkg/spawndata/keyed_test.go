package spawndata

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const keyedPositionFirst = `[
  {
    "path": "TimberHearth_Body/Sector_TH/Tree_01",
    "alignRadial": true,
    "position": {
      "x": 10.5,
      "y": -3,
      "z": 7.25
    },
    "rotation": {
      "x": 15,
      "y": 90,
      "z": -45
    }
  },
  {
    "path": "TimberHearth_Body/Sector_TH/Tree_02",
    "position": {
      "x": 1,
      "y": 2,
      "z": 3
    },
    "rotation": {
      "x": 4,
      "y": 5,
      "z": 6
    }
  }
]`

const keyedRotationFirst = `[
  {
    "path": "TimberHearth_Body/Sector_TH/Tree_01",
    "alignRadial": true,
    "rotation": {
      "x": 15,
      "y": 90,
      "z": -45
    },
    "position": {
      "x": 10.5,
      "y": -3,
      "z": 7.25
    }
  },
  {
    "path": "TimberHearth_Body/Sector_TH/Tree_02",
    "rotation": {
      "x": 4,
      "y": 5,
      "z": 6
    },
    "position": {
      "x": 1,
      "y": 2,
      "z": 3
    }
  }
]`

func TestParseKeyedRecords(t *testing.T) {
	records := ParseKeyed(keyedPositionFirst)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d: %+v", len(records), records)
	}

	r := records[0]
	if r.Path != "TimberHearth_Body/Sector_TH/Tree_01" {
		t.Errorf("Unexpected path %q", r.Path)
	}
	if !r.AlignRadial {
		t.Errorf("Expected alignRadial to be set")
	}
	if r.Position != (mgl32.Vec3{10.5, -3, 7.25}) {
		t.Errorf("Unexpected position %v", r.Position)
	}
	if r.Rotation != (mgl32.Vec3{15, 90, -45}) {
		t.Errorf("Unexpected rotation %v", r.Rotation)
	}

	if records[1].AlignRadial {
		t.Errorf("alignRadial leaked into the second record")
	}
	if records[1].Rotation != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("Unexpected rotation %v", records[1].Rotation)
	}
}

func TestParseKeyedBlockOrderIndependent(t *testing.T) {
	a := ParseKeyed(keyedPositionFirst)
	b := ParseKeyed(keyedRotationFirst)
	if len(a) != len(b) {
		t.Fatalf("Record counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestParseKeyedMissingAxis(t *testing.T) {
	input := `{
    "path": "A",
    "position": {
      "x": 1,
      "y": 2,
      "z": 3
    },
    "rotation": {
      "x": 30,
      "y": 60
    }
  },
  {
    "path": "B",
    "position": {
      "x": 4,
      "y": 5,
      "z": 6
    },
    "rotation": {
      "x": 7,
      "y": 8,
      "z": 9
    }
  }`

	records := ParseKeyed(input)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Rotation != (mgl32.Vec3{30, 60, 0}) {
		t.Errorf("Expected missing z to stay zero, got %v", records[0].Rotation)
	}
	if records[1].Path != "B" || records[1].Rotation != (mgl32.Vec3{7, 8, 9}) {
		t.Errorf("Parsing did not continue after the short record: %+v", records[1])
	}
}

func TestParseKeyedTrailingCommasAndBadValues(t *testing.T) {
	input := `{
    "path": "A",,
    "position": {
      "x": 1.5,
      "y": nope,
      "z": 2.5,
    },
  },`

	records := ParseKeyed(input)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Position != (mgl32.Vec3{1.5, 0, 2.5}) {
		t.Errorf("Unexpected position %v", records[0].Position)
	}
}

func TestParseKeyedRecordWithoutPath(t *testing.T) {
	input := `[
  {
    "position": {
      "x": 1,
      "y": 1,
      "z": 1
    }
  },
  {
    "rotation": {
      "y": 180
    }
  }
]`
	records := ParseKeyed(input)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].Rotation != (mgl32.Vec3{0, 180, 0}) {
		t.Errorf("Unexpected rotation %v", records[1].Rotation)
	}
}

func TestParseKeyedUnterminatedRecordIsKept(t *testing.T) {
	input := `{
    "path": "Tail",
    "position": {
      "x": 9`
	records := ParseKeyed(input)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Path != "Tail" || records[0].Position[0] != 9 {
		t.Errorf("Unexpected record %+v", records[0])
	}
}

func TestParseKeyedPathStartsNewRecord(t *testing.T) {
	input := `"path": "A",
"position": {
"x": 1
}
"path": "B",
"position": {
"x": 2
}`
	records := ParseKeyed(input)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Path != "A" || records[1].Path != "B" {
		t.Errorf("Unexpected paths %q, %q", records[0].Path, records[1].Path)
	}
}

// Known fragility: a line that closes a nested block and the record at once
// ("} }") only closes the block. The record stays open and absorbs the next
// record's block values until another standalone brace appears.
func TestParseKeyedDoubleBraceOnlyClosesBlock(t *testing.T) {
	input := `{
"path": "A",
"rotation": {
"x": 1
} }
{
"rotation": {
"x": 2
}
}`
	records := ParseKeyed(input)
	if len(records) != 1 {
		t.Fatalf("Expected the two records to merge into 1, got %d: %+v", len(records), records)
	}
	if records[0].Path != "A" || records[0].Rotation[0] != 2 {
		t.Errorf("Unexpected merged record %+v", records[0])
	}
}

func TestParseKeyedAxisLineClosingBlock(t *testing.T) {
	input := `[
  {
    "position": {
      "x": 1,
      "y": 2,
      "z": 3 }
  },
  {
    "position": {
      "x": 4,
      "y": 5,
      "z": 6},
    "rotation": {
      "y": 90 }
  }
]`
	records := ParseKeyed(input)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Record 0: unexpected position %v", records[0].Position)
	}
	if records[1].Position != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("Record 1: unexpected position %v", records[1].Position)
	}
	if records[1].Rotation != (mgl32.Vec3{0, 90, 0}) {
		t.Errorf("Record 1: unexpected rotation %v", records[1].Rotation)
	}
}

func TestKeyedScannerTransitions(t *testing.T) {
	var s keyedScanner
	steps := []struct {
		line string
		want keyedState
	}{
		{`{`, stateIdle},
		{`"path": "A",`, stateInRecord},
		{`"position": {`, stateInPositionBlock},
		{`"x": 1,`, stateInPositionBlock},
		{`},`, stateInRecord},
		{`"position": {`, stateInPositionBlock},
		{`"z": 3 } }`, stateInRecord},
		{`"rotation": {`, stateInRotationBlock},
		{`}`, stateInRecord},
		{`}`, stateIdle},
		{`}`, stateIdle},
	}
	for i, st := range steps {
		s.step(st.line)
		if s.state != st.want {
			t.Errorf("Step %d (%q): expected %v, got %v", i, st.line, st.want, s.state)
		}
	}
	if len(s.out) != 1 {
		t.Errorf("Expected 1 emitted record, got %d", len(s.out))
	}
}
