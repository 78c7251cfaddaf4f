// Package mmap provides read-only memory-mapped file access.
//
// LocalStore maps listing blobs (partition_tree.bin, the partition CSVs,
// catalog_info.json) instead of copying them through a file descriptor.
//
//	m, err := mmap.Open("partition_tree.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2) and madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile; Advise is a no-op there.
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must not touch Bytes() after Close returns.
package mmap
