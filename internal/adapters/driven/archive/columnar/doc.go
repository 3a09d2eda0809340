// Package columnar stores archive records in a single compressed,
// column-oriented file.
//
// # File layout
//
//	offset  size  field
//	0       4     magic "LFA1"
//	4       1     format version
//	5       1     compression tag (0 none, 1 lz4, 2 zstd)
//	6       8     uncompressed payload size, big endian
//	14      32    BLAKE3-256 of the uncompressed payload
//	46      ...   payload
//
// The payload is a CBOR map of columns, one array per field, encoded with
// Core Deterministic Encoding. Equal records therefore always produce an
// identical file, so rewriting an archive with the same content is a
// byte-for-byte no-op.
package columnar
