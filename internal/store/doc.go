// Package store persists whole record collections as obfuscated text files.
//
// # File Format
//
// A store file holds one record per line:
//
//	line = codec.ToText(codec.XOR([]byte(recordCodec.Serialize(r)), key))
//
// Blank lines are ignored on load.
//
// # Persistence Discipline
//
// There is no incremental update. Callers load the full collection, change
// it in memory and save the full collection back; SaveAll replaces the file
// contents with exactly the records it was given, in order. Update wraps
// that cycle for a single mutation.
//
// LoadAll on a path that does not exist returns an empty collection. Any
// malformed line aborts the load with a *errors.FormatError carrying the
// line number; no partial collection is returned.
//
// # Concurrency
//
// A Store performs no locking. It assumes one process uses the files at a
// time. By default SaveAll truncates the target and rewrites it, so a
// concurrent reader can observe a partially written file. WithAtomicWrites
// switches to writing a temporary file in the same directory and renaming
// it over the target, which readers see as a single replacement. Concurrent
// writers still race and the last rename wins.
package store
