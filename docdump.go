// Package docdump builds a single combined plain-text export of an HTML
// documentation tree. It discovers input files under a root directory,
// extracts readable text from each (stripping navigation chrome and
// preserving code blocks), and assembles one artifact with a generated
// table of contents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goquery/, htmltomarkdown/).
package docdump
