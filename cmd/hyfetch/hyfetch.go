package main

import (
	"os"

	. "github.com/elyby/hyfetch/internal/cmd"
)

func main() {
	os.Exit(Execute(os.Stderr))
}
