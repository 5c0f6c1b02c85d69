package features

import (
	"testing"

	"fraudapi/src/faults"
)

func TestNewSchemaPartition(t *testing.T) {
	schema, err := NewSchema(
		[]string{"TransactionAmt", "card1", "card4"},
		[]string{"TransactionAmt", "card1"},
		[]string{"card4"},
	)
	if err != nil {
		t.Fatalf("unexpected error building schema: %v", err)
	}

	if schema.Len() != 3 {
		t.Fatalf("expected 3 features, got %d", schema.Len())
	}
	if !schema.IsNumeric("TransactionAmt") || !schema.IsNumeric("card1") {
		t.Fatal("numeric partition not derived correctly")
	}
	if !schema.IsCategorical("card4") {
		t.Fatal("categorical partition not derived correctly")
	}
	if schema.Has("unknown") {
		t.Fatal("schema should not report unknown features")
	}
}

func TestNewSchemaOverlappingPartitions(t *testing.T) {
	_, err := NewSchema(
		[]string{"TransactionAmt", "card4"},
		[]string{"TransactionAmt", "card4"},
		[]string{"card4"},
	)
	if err == nil {
		t.Fatal("expected error for feature in both partitions")
	}
	if !faults.IsKind(err, faults.SchemaArtifact) {
		t.Fatalf("expected schema artifact fault, got %v", err)
	}
}

func TestNewSchemaUncoveredColumn(t *testing.T) {
	_, err := NewSchema(
		[]string{"TransactionAmt", "card1", "card4"},
		[]string{"TransactionAmt", "card1"},
		[]string{"ProductCD"},
	)
	if err == nil {
		t.Fatal("expected error for column missing from both partitions")
	}
	if !faults.IsKind(err, faults.SchemaArtifact) {
		t.Fatalf("expected schema artifact fault, got %v", err)
	}
}

func TestNewSchemaPartitionSizeMismatch(t *testing.T) {
	_, err := NewSchema(
		[]string{"TransactionAmt"},
		[]string{"TransactionAmt"},
		[]string{"card4"},
	)
	if err == nil {
		t.Fatal("expected error for partition larger than column list")
	}
	if !faults.IsKind(err, faults.SchemaArtifact) {
		t.Fatalf("expected schema artifact fault, got %v", err)
	}
}
