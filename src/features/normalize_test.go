package features

import (
	"testing"

	"fraudapi/src/faults"
)

func testSchema(t *testing.T) *Schema {
	t.Helper()

	schema, err := NewSchema(
		[]string{"TransactionAmt", "card1", "addr1", "card4", "ProductCD"},
		[]string{"TransactionAmt", "card1", "addr1"},
		[]string{"card4", "ProductCD"},
	)
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}
	return schema
}

func TestExpandKeySetMatchesSchema(t *testing.T) {
	schema := testSchema(t)

	// regardless of which optional fields were supplied
	inputs := []map[string]any{
		{"TransactionAmt": 500.0},
		{"TransactionAmt": 500.0, "card1": 1234.0, "card4": "visa"},
		{"TransactionAmt": 500.0, "card1": 1234.0, "addr1": 87.0, "card4": "visa", "ProductCD": "W"},
	}

	for _, fields := range inputs {
		row, err := Expand(fields, schema)
		if err != nil {
			t.Fatalf("unexpected error expanding %v: %v", fields, err)
		}

		if len(row) != schema.Len() {
			t.Fatalf("expected %d keys, got %d", schema.Len(), len(row))
		}
		for _, name := range schema.Columns() {
			if _, ok := row[name]; !ok {
				t.Fatalf("row missing schema feature %q", name)
			}
		}
	}
}

func TestExpandDefaults(t *testing.T) {
	schema := testSchema(t)

	row, err := Expand(map[string]any{"TransactionAmt": 500.0}, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := row["card1"]; got != 0.0 {
		t.Fatalf("absent numeric feature should default to 0.0, got %v", got)
	}
	if got := row["addr1"]; got != 0.0 {
		t.Fatalf("absent numeric feature should default to 0.0, got %v", got)
	}
	if got := row["card4"]; got != "" {
		t.Fatalf("absent categorical feature should default to empty string, got %v", got)
	}
	if got := row["ProductCD"]; got != "" {
		t.Fatalf("absent categorical feature should default to empty string, got %v", got)
	}
	if got := row["TransactionAmt"]; got != 500.0 {
		t.Fatalf("provided field should overwrite default, got %v", got)
	}
}

func TestExpandIgnoresUnknownFields(t *testing.T) {
	schema := testSchema(t)

	row, err := Expand(map[string]any{"TransactionAmt": 10.0, "DeviceType": "mobile"}, schema)
	if err != nil {
		t.Fatalf("unknown input fields must not be an error: %v", err)
	}
	if _, ok := row["DeviceType"]; ok {
		t.Fatal("unknown input field leaked into the row")
	}
}

func TestExpandCoercesTypes(t *testing.T) {
	schema := testSchema(t)

	row, err := Expand(map[string]any{
		"TransactionAmt": "500.5", // numeric text is parsed
		"card1":          1234,
		"ProductCD":      5.0, // numbers in categorical fields become strings
	}, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := row["TransactionAmt"]; got != 500.5 {
		t.Fatalf("expected parsed 500.5, got %v", got)
	}
	if got := row["card1"]; got != 1234.0 {
		t.Fatalf("expected 1234.0, got %v", got)
	}
	if got := row["ProductCD"]; got != "5" {
		t.Fatalf("expected \"5\", got %v", got)
	}
}

func TestExpandCoercionFailure(t *testing.T) {
	schema := testSchema(t)

	_, err := Expand(map[string]any{"TransactionAmt": "not-a-number"}, schema)
	if err == nil {
		t.Fatal("expected coercion error for non-numeric text in numeric field")
	}
	if !faults.IsKind(err, faults.SchemaCoercion) {
		t.Fatalf("expected schema coercion fault, got %v", err)
	}
}

func TestCoerceNumeric(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{500.0, 500.0, true},
		{float32(2.5), 2.5, true},
		{42, 42.0, true},
		{int64(7), 7.0, true},
		{"13.5", 13.5, true},
		{"abc", 0, false},
		{struct{}{}, 0, false},
	}

	for _, tc := range cases {
		got, err := CoerceNumeric(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("CoerceNumeric(%v) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("CoerceNumeric(%v) should fail", tc.in)
		}
	}
}
