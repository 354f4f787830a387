// Package dataset pulls the prepared ITAC artifacts from object storage.
//
// The API never builds its own data: the upstream parser pipeline converts the
// published IAC spreadsheet into a SQLite database and exports the NAICS and
// ARC hierarchy documents, then uploads all three to a bucket. Sync downloads
// them to the locations the server reads at startup.
//
// Downloads are written to a temporary sibling file and renamed into place, so
// a half-finished transfer never replaces a good artifact.
package dataset
