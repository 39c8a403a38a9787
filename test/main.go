package main

import (
	"fmt"

	"github.com/henderiw/intervalset/pkg/interval/id32"
	"github.com/henderiw/intervalset/pkg/vlanranges"
)

func main() {
	s := id32.NewFromRanges(
		id32.RangeFrom(3, 5),
		id32.RangeFrom(7, 9),
		id32.RangeFrom(13, 16),
	)
	fmt.Println("set", s)

	s.Add(id32.RangeFrom(4, 8))
	fmt.Println("after add 4-8", s)

	s.Remove(id32.RangeFrom(2, 7))
	fmt.Println("after remove 2-7", s)

	fmt.Println("gaps", s.Gaps())
	fmt.Println("difference 1-20", s.DifferenceAll(id32.RangeFrom(1, 20)))

	vt, err := vlanranges.New()
	if err != nil {
		panic(err)
	}
	if err := vt.Claim("servers", "100-199", map[string]string{"tenant": "a"}); err != nil {
		panic(err)
	}
	if err := vt.Claim("clients", "1000-2000", map[string]string{"tenant": "b"}); err != nil {
		panic(err)
	}
	for _, free := range vt.Available() {
		fmt.Println("available vlans", free)
	}
}
