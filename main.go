package main

import (
	"github.com/epmviz/backend/cmd/app"
)

func main() {
	app.Run()
}
