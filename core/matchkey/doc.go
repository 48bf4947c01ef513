// Package matchkey builds the composite matching key used to pair rows of the
// left and right inputs.
//
// A Spec is an ordered list of fields, each a column index with an optional
// fixed width. Encoding a row concatenates, for each field, a separator token
// and the field value (left-padded with '0' up to the width), followed by a
// trailing separator. Padding numeric keys to a fixed width makes string
// order agree with numeric order.
//
// The end of a stream is represented by the End key, a tagged value that
// compares greater than every real key. No real key can sort after it,
// whatever its content.
//
// # Limitation
//
// The separator is the two-byte token "\x1f\x1f". A field containing that
// token breaks Decode and can alias two different keys. CSV data rarely
// carries ASCII unit separators, but this is not guaranteed.
package matchkey
