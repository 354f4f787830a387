// Package storage provides the object storage client used to fetch prepared
// dataset artifacts.
//
// The upstream parser pipeline publishes the ITAC SQLite database and the
// NAICS/ARC hierarchy documents to an S3-compatible bucket. This package wraps
// the MinIO client behind a small read-only interface so the sync command can
// be tested with mocks (see the mocks subpackage).
package storage
