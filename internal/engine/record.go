package engine

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/emtp-protocol/emtp/internal/field"
)

// InputRecord is the raw record supplied by a caller. All fields are
// optional; the engine never mutates it, and absent fields simply
// reduce which tuple families are produced.
type InputRecord struct {
	FullName  string         `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	DOB       string         `json:"dob,omitempty" yaml:"dob,omitempty"`
	Phones    []string       `json:"phones,omitempty" yaml:"phones,omitempty"`
	Addresses []AddressInput `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	IDNumbers []string       `json:"id_numbers,omitempty" yaml:"id_numbers,omitempty"`
}

// empty reports whether the record carries no identifier field at all.
func (r InputRecord) empty() bool {
	return r.FullName == "" && r.DOB == "" &&
		len(r.Phones) == 0 && len(r.Addresses) == 0 && len(r.IDNumbers) == 0
}

// AddressInput accepts either a structured address or a free-form
// string. On the wire a bare string decodes as free-form; an object
// decodes as structured. Free-form input goes through the best-effort
// heuristic split and is never authoritative.
type AddressInput struct {
	Freeform string `json:"freeform,omitempty" yaml:"freeform,omitempty"`

	Line1      string `json:"line1,omitempty" yaml:"line1,omitempty"`
	Line2      string `json:"line2,omitempty" yaml:"line2,omitempty"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
}

// structured returns the field-normalizer form, running the free-form
// split when no structured data was given.
func (a AddressInput) structured() field.Address {
	if a.Freeform != "" && a.Line1 == "" {
		return field.ParseFreeform(a.Freeform)
	}
	return field.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// addressAlias avoids UnmarshalJSON/UnmarshalYAML recursion.
type addressAlias AddressInput

// UnmarshalJSON implements json.Unmarshaler: a JSON string is
// free-form, an object is structured.
func (a *AddressInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AddressInput{Freeform: s}
		return nil
	}
	var alias addressAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*a = AddressInput(alias)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same convention.
func (a *AddressInput) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*a = AddressInput{Freeform: node.Value}
		return nil
	}
	var alias addressAlias
	if err := node.Decode(&alias); err != nil {
		return err
	}
	*a = AddressInput(alias)
	return nil
}
