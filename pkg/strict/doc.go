// Package strict provides type-restricted collection wrappers around native
// Go storage: an ordered List with Stack and Queue specializations, and an
// insertion-ordered keyed Collection with an Array specialization.
// Every container owns a TypeSet, an allow-list of type descriptors checked
// before each insertion; values that satisfy no descriptor are rejected
// before storage is touched.
//
// Containers can be snapshotted to a JSON record and restored from one;
// restoring re-validates every stored item against the restored allow-list.
package strict
