// Package employees is an in-memory roster of employee records with
// hash lookups by name and id, grouped storage by profession, and
// salary statistics. Records describe their own fields to the emit
// engine, so a roster dump is a plain emission.
package employees

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/halverson/scribe/internal/emit"
)

// Profession categorizes a record. The roster keeps records of one
// profession contiguous, in declaration order of the constants.
type Profession int

const (
	Engineer Profession = iota
	Doctor
	Lawyer
)

var professionNames = map[Profession]string{
	Engineer: "engineer",
	Doctor:   "doctor",
	Lawyer:   "lawyer",
}

func (p Profession) String() string {
	if name, ok := professionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("profession(%d)", int(p))
}

// ParseProfession converts the textual form back to a Profession.
func ParseProfession(s string) (Profession, error) {
	for p, name := range professionNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown profession %q", s)
}

// MarshalYAML encodes the profession by name.
func (p Profession) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML decodes a profession from its name.
func (p *Profession) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseProfession(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Record is one roster entry. IDs are assigned by the DB on insert;
// an ID present in input data is ignored.
type Record struct {
	ID       uint64     `yaml:"id,omitempty"`
	Name     string     `yaml:"name"`
	Position Profession `yaml:"position"`
	Age      int        `yaml:"age"`
	Salary   int        `yaml:"salary"`
}

// DescribeFields implements emit.Describer.
func (r Record) DescribeFields(w *emit.FieldWriter) error {
	if err := w.Field("id", r.ID); err != nil {
		return err
	}
	if err := w.Field("name", r.Name); err != nil {
		return err
	}
	if err := w.Field("position", r.Position.String()); err != nil {
		return err
	}
	if err := w.Field("age", r.Age); err != nil {
		return err
	}
	return w.Field("salary", r.Salary)
}
