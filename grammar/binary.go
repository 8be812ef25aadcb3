package grammar

import "github.com/dekarrin/rezi"

// grammarMirror holds Grammar's field values in exported form, so rezi's
// reflective encoder (which only sees exported fields) can reach the
// original (pre-augmentation) start symbol alongside the production list.
type grammarMirror struct {
	Productions []Production
	Start       Symbol
}

// MarshalBinary encodes g via rezi's reflective binary format.
func (g Grammar) MarshalBinary() ([]byte, error) {
	return rezi.EncBinary(grammarMirror{Productions: g.Productions, Start: g.start}), nil
}

// UnmarshalBinary decodes a Grammar previously written by MarshalBinary.
func (g *Grammar) UnmarshalBinary(data []byte) error {
	var m grammarMirror
	if _, err := rezi.DecBinary(data, &m); err != nil {
		return err
	}
	g.Productions = m.Productions
	g.start = m.Start
	return nil
}
