package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"war.hcl" env:"WAR_CONFIG" help:"HCL config file (ignored when missing)"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`
	LogLevel string `env:"WAR_LOG_LEVEL" help:"Log level: debug, info, warn, error"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Play    PlayCmd    `cmd:"" default:"withargs" help:"Play a single game"`
	Batch   BatchCmd   `cmd:"" help:"Simulate many games and report statistics"`
	Version VersionCmd `cmd:"" help:"Show version"`
}

// VersionCmd prints the build version
type VersionCmd struct{}

func (c *VersionCmd) Run(_ *Globals) error {
	fmt.Println("war", version)
	return nil
}

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("war"),
		kong.Description("Simulator for the card game War"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
