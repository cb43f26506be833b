// Package contentcache keeps the last successful content list per query in
// the local SQLite store.
//
// The loader writes a fresh snapshot after every successful fetch and reads
// it back when the backend is unreachable, so a guest still sees the last
// known lists offline. Deleting an item removes it from every snapshot so a
// stale cache never resurrects it.
package contentcache
