package main

import (
	"os"

	"github.com/arthur-debert/savecrypt/cmd/savecrypt"
)

func main() {
	os.Exit(savecrypt.Execute())
}
