// Package language resolves the language keys used in the playlist
// configuration to a name, a code and a native display name.
//
// BCP 47 tags and English language names are resolved through
// golang.org/x/text. A small built-in table covers languages the CLDR data
// does not name; those resolve to the undetermined code "und".
package language
