// Package region provides an in-memory implementation of multregt.RegionProvider.
//
// Properties holds the grid extents and one integer region array per name.
// The distinct ids of each array are kept in a roaring bitmap so wildcard
// expansion does not rescan the cells.
package region
