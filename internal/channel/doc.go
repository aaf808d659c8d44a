// Package channel assembles the content tree published for the channel: one
// topic per configured language, one video per playlist entry that has a
// curated description.
//
// The tree is written as JSON for the publishing platform's importer.
package channel
