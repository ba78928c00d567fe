package namespace_test

import (
	"fmt"

	"github.com/seawatts/nslog/namespace"
)

func ExampleRegistry_IsActive() {
	reg := namespace.NewRegistry()
	reg.Enable("app:*")
	reg.Disable("app:cache")

	fmt.Println(reg.IsActive("app:db"))
	fmt.Println(reg.IsActive("app:cache"))
	fmt.Println(reg.IsActive("thirdparty:lib"))
	// Output:
	// true
	// false
	// false
}

func ExampleCompile() {
	p, _ := namespace.Compile("svc:*")
	fmt.Println(p.Matches("svc"))
	fmt.Println(p.Matches("svc:db"))
	fmt.Println(p.Matches("svcx"))
	// Output:
	// true
	// true
	// false
}
