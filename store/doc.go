// Package store provides the container backends holding diffraction pattern
// collections.
//
// The PatternStore interface is the only surface the data access layer above
// depends on. Two implementations exist: SingFEL reads the singfel
// multi-pattern HDF5 layout (optionally gzip-wrapped), and Memory holds
// patterns in process memory for synthetic data and tests.
package store
