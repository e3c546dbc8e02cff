// cmd/seqstat/main.go
package main

import (
	"seqpar/internal/app"
	"seqpar/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
