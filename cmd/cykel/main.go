package main

import (
	"github.com/steveppt9/cykel/cmd/cykel/cmd"
)

func main() {
	cmd.Execute()
}
