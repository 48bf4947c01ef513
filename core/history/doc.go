// Package history keeps an audit trail of diff runs in a local bbolt file.
//
// Each run is stored as one msgpack encoded Record under a key made of its
// start time and run id, so a cursor walks runs in chronological order.
//
// # Usage
//
//	store, err := history.Open("csvdiff.db")
//	defer store.Close()
//	err = store.Append(history.Record{RunID: id, StartedAt: time.Now(), ...})
//	recent, err := store.List(10)
package history
