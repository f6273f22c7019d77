package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/cmd"
)

func main() {
	cmd.Execute()
}
