package main

import (
	"os"

	"github.com/PolarWolf314/stagecrypt/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
