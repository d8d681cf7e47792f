package main

import (
	"fmt"
	"os"

	"github.com/mylxsw/ssml-tts/internal/command"
)

var GitCommit string
var Version string

func main() {
	provider := command.Azure()
	provider.Version = fmt.Sprintf("%s(%s)", Version, GitCommit)

	os.Exit(command.Run(provider, os.Args))
}
