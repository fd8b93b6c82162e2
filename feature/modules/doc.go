// Package modules resolves the module names of converted requirement files against the module
// list of a project.
//
// Converted files are named "<module>_<8 hex digits>_local_conversion.xlsx". The module part is
// looked up in the target list with the fuzzy prefix matcher of core/match: spaces, underscores
// and dots are equivalent, case is ignored and the target entry may carry extra description text.
// When the full name is not found, the leading module id ("LAH.000.900.CM") is tried on its own.
// Unresolved modules come with the target entries that resemble them.
package modules
