package automaton

import "github.com/dekarrin/rezi"

// MarshalBinary encodes d via rezi's reflective binary format, so a built
// DFA (the expensive artifact: one subset construction per lexical
// category) can be cached to disk instead of rebuilt on every invocation of
// the CLI shell.
func (d *DFA) MarshalBinary() ([]byte, error) {
	return rezi.EncBinary(*d), nil
}

// UnmarshalBinary decodes a DFA previously written by MarshalBinary.
func (d *DFA) UnmarshalBinary(data []byte) error {
	_, err := rezi.DecBinary(data, d)
	return err
}
