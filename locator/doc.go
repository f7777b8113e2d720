// Package locator resolves lump queries against a WAD directory.
//
// A query is a sequence of names joined by operators and ending in a bare
// name. Each operator narrows the view searched by the rest of the query:
//
//	NAME+   continue from the first NAME entry (inclusive)
//	NAME/   continue inside the NAME_START ... NAME_END section (exclusive)
//
// For example, "e1m3+linedefs" finds the LINEDEFS lump that follows the
// E1M3 marker, and "f/step1" finds STEP1 between F_START and F_END. Names
// are case-insensitive. A query made only of decimal digits selects an
// entry by index.
package locator
