// Package facedir provides the six axis-aligned face directions of a corner-point
// grid cell and a fixed-size set type over them.
//
// A Set is what MULTREGT direction codes decode into: each letter of a code such as
// "XZ" selects both the positive and the negative face along that axis.
package facedir
