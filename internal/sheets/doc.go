// Package sheets reads and writes the description review spreadsheet.
//
// Rows follow descriptions.Columns. Writers append below the title row and
// create it when the sheet is empty; a sheet whose first row is something
// else is rejected rather than overwritten.
package sheets
