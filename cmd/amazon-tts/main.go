package main

import (
	"fmt"
	"os"

	"github.com/mylxsw/ssml-tts/internal/command"
)

var GitCommit string
var Version string

func main() {
	provider := command.Amazon()
	provider.Version = fmt.Sprintf("%s(%s)", Version, GitCommit)

	os.Exit(command.Run(provider, os.Args))
}
