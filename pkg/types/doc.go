// Package types defines the clue pool domain types, the Workbook
// collaborator interface, and standard errors for the hunt generator.
package types
