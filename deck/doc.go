// Package deck loads MULTREGT test decks written in HCL.
//
// A deck describes the grid, its region arrays and an ordered list of
// multregt blocks:
//
//	grid {
//	  nx = 10
//	  ny = 10
//	  nz = 1
//	}
//
//	region "MULTNUM" {
//	  fill = 1
//	}
//
//	multregt {
//	  source     = 1
//	  target     = 2
//	  multiplier = 0.5
//	  directions = "XY"
//	  nnc        = "ALL"
//	  region     = "M"
//	}
//
// Attributes left out of a multregt block are defaulted, exactly like the
// corresponding items of the keyword. Files ending in .zst are decompressed
// before parsing.
package deck
