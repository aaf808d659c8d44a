// Package main hosts the ytchef CLI entrypoint and command graph.
//
// The Cobra command tree wires configuration, logging, the metadata cache and
// the yt-dlp fetcher together and hands them to the internal packages: build
// assembles the channel tree, sheet syncs the description spreadsheet, insert
// patches single videos into cached playlists, and cache inspects stored
// documents. Commands that write the cache hold an exclusive lock on the cache
// directory for the duration of the run.
package main
