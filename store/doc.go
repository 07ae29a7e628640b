// Package store is the record store adapter: one repository per record kind
// over a MongoDB database reached through the official driver.
//
// Every repository offers insert, find-all, find-by-id and delete-by-id;
// students additionally support update-by-id and the courses join. Failures
// are classified into ErrInvalidID (malformed identifier, no round-trip),
// ErrNotFound and ErrDuplicateKey (unique index violation). Any other driver
// error is returned wrapped.
//
// References between records are weak. Deleting a course leaves student
// enrolments and task assignments pointing at it untouched; the join simply
// stops resolving them.
package store
