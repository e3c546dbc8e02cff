// cmd/seqindex/main.go
package main

import (
	"seqpar/internal/appshell"
	"seqpar/internal/indexapp"
)

func main() {
	appshell.Main(indexapp.RunContext)
}
