// Package csvio reads delimited text files as rewindable row producers.
//
// A Reader decodes the file from its text encoding to UTF-8, strips a
// byte order mark, and parses records with encoding/csv. Rows of varying
// length are allowed and quotes are parsed leniently. Rewind seeks the
// underlying file back to the start, which is what the two-pass diff needs.
//
// Dialects describe the delimiter, quote character, line terminator and
// space handling of a file. They come either from explicit settings or from
// Sniff, which guesses the dialect and header presence from a sample.
//
// # Usage
//
//	enc, err := csvio.LookupEncoding("shift_jis")
//	f, _ := os.Open("left.csv")
//	dialect, err := csvio.SniffFile(f, 4096, enc)
//	if err != nil {
//	    dialect = csvio.DefaultDialect()
//	}
//	r := csvio.NewReader(f, dialect, enc)
//	row, err := r.Next()
package csvio
