package model

import (
	"encoding/json"

	"fraudapi/src/faults"
)

// TransactionInput is the partial transaction payload accepted by the
// scoring endpoint. Only TransactionAmt is required; pointer fields
// distinguish "absent" from a provided zero value.
type TransactionInput struct {
	TransactionAmt *float64 `json:"TransactionAmt"`
	Card1          *float64 `json:"card1,omitempty"`
	Card2          *float64 `json:"card2,omitempty"`
	Card3          *float64 `json:"card3,omitempty"`
	Card4          *string  `json:"card4,omitempty"`
	Card5          *float64 `json:"card5,omitempty"`
	Addr1          *float64 `json:"addr1,omitempty"`
	Addr2          *float64 `json:"addr2,omitempty"`
}

// Validate checks the required-field constraint.
func (t *TransactionInput) Validate() error {
	if t.TransactionAmt == nil {
		return faults.Newf(faults.Validation, "model.TransactionInput",
			"TransactionAmt is required")
	}
	return nil
}

// Fields returns the provided fields keyed by their wire names. Absent
// optional fields are omitted so the normalizer keeps schema defaults.
func (t *TransactionInput) Fields() map[string]any {
	out := make(map[string]any, 8)
	if t.TransactionAmt != nil {
		out["TransactionAmt"] = *t.TransactionAmt
	}
	if t.Card1 != nil {
		out["card1"] = *t.Card1
	}
	if t.Card2 != nil {
		out["card2"] = *t.Card2
	}
	if t.Card3 != nil {
		out["card3"] = *t.Card3
	}
	if t.Card4 != nil {
		out["card4"] = *t.Card4
	}
	if t.Card5 != nil {
		out["card5"] = *t.Card5
	}
	if t.Addr1 != nil {
		out["addr1"] = *t.Addr1
	}
	if t.Addr2 != nil {
		out["addr2"] = *t.Addr2
	}
	return out
}

// Snapshot serializes the input for the audit log. Every recognized field
// is present, absent optionals at their defaults, so stored snapshots all
// share one shape regardless of which fields the caller sent.
func (t *TransactionInput) Snapshot() (string, error) {
	full := map[string]any{
		"TransactionAmt": 0.0,
		"card1":          0.0,
		"card2":          0.0,
		"card3":          0.0,
		"card4":          "",
		"card5":          0.0,
		"addr1":          0.0,
		"addr2":          0.0,
	}
	for name, value := range t.Fields() {
		full[name] = value
	}

	raw, err := json.Marshal(full)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
