// cmd/mmclust/main.go
package main

import (
	"mmclust/internal/app"
	"mmclust/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
