// Package rowsource turns a raw row producer into an ordered, validated stream
// of row facts for one side of a diff.
//
// A Source pulls exactly one row from its producer per Next call, numbers it,
// encodes its matching key and checks that keys never decrease (and, when
// requested, never repeat). Exhaustion is ordinary data: once the producer
// returns io.EOF, Next keeps returning a fact whose key is matchkey.End.
//
// Sources support a single kind of seek, Reset, which rewinds the producer to
// its first row. The diff runs a pre-scan pass and then the real pass over the
// same Source instances.
package rowsource
