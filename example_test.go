package multregt_test

import (
	"fmt"

	"github.com/hupe1980/multregt"
	"github.com/hupe1980/multregt/facedir"
	"github.com/hupe1980/multregt/region"
)

func Example() {
	// Three cells in a row: region 1 on the left, region 2 on the right.
	props, err := region.New(3, 1, 1)
	if err != nil {
		panic(err)
	}
	if err := props.Set(multregt.Multnum, []int{1, 2, 2}); err != nil {
		panic(err)
	}

	scanner, err := multregt.New([]multregt.Directive{
		{
			Source:     multregt.Region(1),
			Target:     multregt.Region(2),
			Multiplier: 0.5,
			Directions: "X",
			RegionCode: "M",
		},
	}, props)
	if err != nil {
		panic(err)
	}

	fmt.Println(scanner.Multiplier(0, 1, facedir.XPlus))
	fmt.Println(scanner.Multiplier(1, 0, facedir.XMinus))
	fmt.Println(scanner.Multiplier(1, 2, facedir.XPlus))
	// Output:
	// 0.5
	// 0.5
	// 1
}

func ExampleExpand() {
	props, err := region.New(4, 1, 1)
	if err != nil {
		panic(err)
	}
	if err := props.Set(multregt.Fluxnum, []int{1, 2, 5, 5}); err != nil {
		panic(err)
	}

	// A defaulted source selector stands for every FLUXNUM region.
	records, name, err := multregt.Expand(multregt.Directive{
		Target:     multregt.Region(7),
		Multiplier: 0.1,
		RegionCode: "F",
	}, props, multregt.Multnum)
	if err != nil {
		panic(err)
	}

	fmt.Println(name)
	for _, r := range records {
		fmt.Println(r.SourceRegion, r.TargetRegion, r.Directions)
	}
	// Output:
	// FLUXNUM
	// 1 7 XYZ
	// 2 7 XYZ
	// 5 7 XYZ
}
