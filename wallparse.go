// Package wallparse extracts posts and their nested comments from the
// wall.html page of a social network data export.
//
// The document is consumed as a flat stream of open/close/text/entity
// events and rebuilt into typed records. Those records can be printed,
// serialized or imported into a local database.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, html/, goquery/).
package wallparse
