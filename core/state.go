package core

// State is the two-slot memory of the skill. It is used both as session
// attributes (one conversation) and as persistent attributes (across
// conversations, keyed by user). An empty string means the field is unset.
//
// Only one (name, characteristic) pair is held at a time; a newly learned
// characteristic replaces the previous one.
type State struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	Characteristic string `json:"characteristic,omitempty" yaml:"characteristic,omitempty"`
}

// Complete reports whether both name and characteristic are set.
func (s State) Complete() bool { return s.Name != "" && s.Characteristic != "" }

// IsZero reports whether neither field is set.
func (s State) IsZero() bool { return s.Name == "" && s.Characteristic == "" }

// Knows reports whether the state holds an answer for the characteristic.
func (s State) Knows(characteristic string) bool {
	return s.Characteristic != "" && s.Characteristic == characteristic
}
