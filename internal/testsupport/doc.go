// Package testsupport builds temp-directory configs, cache handles and
// fixture files for ytchef tests.
package testsupport
