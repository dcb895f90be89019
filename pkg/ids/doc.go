// Package ids derives stable Instance identities from canonical project
// paths. Identity is a pure function of path: the same path in the same
// project always yields the same id, independent of host OS path
// conventions.
package ids
