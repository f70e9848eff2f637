package main

import (
	"github.com/opendata-swiss/geocat-crosswalk/cmd"
)

func main() {
	cmd.Execute()
}
