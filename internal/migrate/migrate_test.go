package migrate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
)

var testNow = time.UnixMilli(1700000000000)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		json string
		want bool
	}{
		{"versioned document", `{"version":"2.0","schema":"goal-tracker-v2","goals":[]}`, true},
		{"legacy array", `[{"id":1,"name":"Reading","hours":5}]`, true},
		{"older version still accepted", `{"version":"1.0","schema":"goal-tracker-v1","goals":[]}`, true},
		{"missing version", `{"schema":"goal-tracker-v2","goals":[]}`, false},
		{"missing schema", `{"version":"2.0","goals":[]}`, false},
		{"goals not an array", `{"version":"2.0","schema":"goal-tracker-v2","goals":{}}`, false},
		{"bare string", `"hello"`, false},
		{"number", `42`, false},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			if err := json.Unmarshal([]byte(tt.json), &v); err != nil {
				t.Fatalf("bad test input: %v", err)
			}
			if got := Validate(v); got != tt.want {
				t.Errorf("Validate(%s) = %v, want %v", tt.json, got, tt.want)
			}
		})
	}
}

func TestValidateBytes_MalformedJSON(t *testing.T) {
	if ValidateBytes([]byte("{not json")) {
		t.Error("expected malformed JSON to be rejected")
	}
}

func TestMigrate_LegacyArray(t *testing.T) {
	var v any
	raw := `[{"id":1,"name":"Reading","emoji":"📚","hours":5}]`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}

	doc := Migrate(v, testNow)

	if doc.Version != constants.DataVersion {
		t.Errorf("expected version %s, got %s", constants.DataVersion, doc.Version)
	}
	if doc.Schema != constants.DataSchema {
		t.Errorf("expected schema %s, got %s", constants.DataSchema, doc.Schema)
	}
	if len(doc.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(doc.Goals))
	}

	g := doc.Goals[0]
	if g.Name != "Reading" {
		t.Errorf("expected name Reading, got %s", g.Name)
	}
	if len(g.Entries) != 1 {
		t.Fatalf("expected 1 backfilled entry, got %d", len(g.Entries))
	}
	if g.Entries[0].Hours != 5 {
		t.Errorf("expected backfilled entry for 5 hours, got %v", g.Entries[0].Hours)
	}
	if g.Entries[0].Source != constants.SourceManual {
		t.Errorf("expected manual source, got %s", g.Entries[0].Source)
	}
	if g.TotalHours != 5 || g.Hours != 5 {
		t.Errorf("expected totals of 5, got total=%v hours=%v", g.TotalHours, g.Hours)
	}
}

func TestMigrate_NoBackfillWhenEntriesExist(t *testing.T) {
	var v any
	raw := `[{"id":1,"name":"Reading","hours":99,"entries":[{"id":"entry-1-aa","timestamp":1000,"date":"2023-01-01","hours":2,"source":"manual"}]}]`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}

	doc := Migrate(v, testNow)
	g := doc.Goals[0]

	if len(g.Entries) != 1 {
		t.Fatalf("expected existing entry preserved, got %d entries", len(g.Entries))
	}
	// Totals come from entries, not the stale legacy hours value.
	if g.TotalHours != 2 {
		t.Errorf("expected total 2 from entries, got %v", g.TotalHours)
	}
	if g.Hours != 2 {
		t.Errorf("expected legacy hours mirror 2, got %v", g.Hours)
	}
}

func TestMigrate_ZeroHoursNoBackfill(t *testing.T) {
	var v any
	raw := `[{"id":1,"name":"Reading","hours":0}]`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}

	doc := Migrate(v, testNow)
	if len(doc.Goals[0].Entries) != 0 {
		t.Errorf("expected no backfilled entry for zero hours, got %d", len(doc.Goals[0].Entries))
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	var v any
	raw := `[{"id":1,"name":"Reading","emoji":"📚","hours":5,"milestones":["50",10,10,-3]}]`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}

	first := Migrate(v, testNow)

	// Round-trip through JSON the way the store does.
	data, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	var v2 any
	if err := json.Unmarshal(data, &v2); err != nil {
		t.Fatal(err)
	}
	second := Migrate(v2, testNow.Add(time.Hour))

	secondData, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(secondData) {
		t.Errorf("migration is not idempotent:\nfirst:  %s\nsecond: %s", data, secondData)
	}
}

func TestMigrate_NormalizesMilestones(t *testing.T) {
	var v any
	raw := `[{"id":1,"name":"Reading","milestones":[100,"50",50,-3,"abc",0]}]`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}

	doc := Migrate(v, testNow)
	got := doc.Goals[0].Milestones
	want := []float64{50, 100}

	if len(got) != len(want) {
		t.Fatalf("expected milestones %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected milestones %v, got %v", want, got)
		}
	}
}

func TestMigrate_PreservesCreatedAt(t *testing.T) {
	var v any
	raw := `{"version":"1.0","schema":"goal-tracker-v1","createdAt":12345,"goals":[]}`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatal(err)
	}

	doc := Migrate(v, testNow)
	if doc.CreatedAt != 12345 {
		t.Errorf("expected createdAt preserved as 12345, got %d", doc.CreatedAt)
	}
	if doc.LastModified != testNow.UnixMilli() {
		t.Errorf("expected lastModified stamped to now, got %d", doc.LastModified)
	}
}

func TestMigrate_DefaultSettings(t *testing.T) {
	var v any
	if err := json.Unmarshal([]byte(`[]`), &v); err != nil {
		t.Fatal(err)
	}

	doc := Migrate(v, testNow)
	if doc.Settings.Timezone != constants.DefaultTimezone {
		t.Errorf("expected default timezone, got %s", doc.Settings.Timezone)
	}
	if doc.Settings.DefaultView != constants.DefaultView {
		t.Errorf("expected default view, got %s", doc.Settings.DefaultView)
	}
}

func TestEnsure(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty input", nil},
		{"malformed JSON", []byte("{broken")},
		{"null", []byte("null")},
		{"unexpected type", []byte(`"str"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Ensure(tt.raw, testNow)
			if doc.Version != constants.DataVersion {
				t.Errorf("expected fallback to current version, got %q", doc.Version)
			}
			if doc.Goals == nil {
				t.Error("expected non-nil goal set")
			}
			if len(doc.Goals) != 0 {
				t.Errorf("expected empty default goal set, got %d goals", len(doc.Goals))
			}
		})
	}
}
