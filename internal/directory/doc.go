// Package directory decodes the on-disk WAD header and directory records.
//
// All multi-byte fields are little-endian signed 32-bit integers and are
// read with explicit byte-order decoding, independent of host layout.
package directory
