package highlight_test

import (
	"fmt"

	"go.abhg.dev/arrows/highlight"
)

func ExampleArrows() {
	fmt.Println(highlight.Arrows("This is a test",
		highlight.Position{Index: 10, Line: 0, Column: 10},
		highlight.Position{Index: 14, Line: 0, Column: 14},
	))
	// Output:
	// This is a test
	//           ^^^^
}

func ExampleLineIndex() {
	src := "line one\nline two\nline three"
	idx := highlight.NewLineIndex(src)

	start := idx.Locate(5)
	end, err := idx.Position(2, 4)
	if err != nil {
		panic(err)
	}

	fmt.Println(highlight.Arrows(src, start, end))
	// Output:
	// line one
	//      ^^
	// line two
	// ^^^^^^^^
	// line three
	// ^^^^
}

func ExampleCheck() {
	src := "line one\nline two"
	err := highlight.Check(src,
		highlight.Position{Index: 9, Line: 0, Column: 9},
		highlight.Position{Index: 13, Line: 1, Column: 4},
	)
	fmt.Println(err)
	// Output:
	// start: index 9 is at 2:1, not 1:10: line and column do not match index
}
