// Package wadtype holds the value types and sentinel errors shared by the
// wad package and its internal codecs.
package wadtype
