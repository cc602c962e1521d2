// Package xsdtime implements the packed 64-bit value class used as the
// internal key for xsd:gYear, xsd:gYearMonth, xsd:date, and
// xsd:dateTime literals in a triple store's index, along with the
// lexical codec that parses and renders the four XSD productions.
//
// DateTime64 is an immutable value type: construction, field access,
// comparison, and hashing are all it provides. Time arithmetic,
// timezone-database lookups, and leap-second handling are out of
// scope; see the package-level design notes in DESIGN.md.
package xsdtime
