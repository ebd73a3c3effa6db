// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --banner, --no-banner, --keys, --verbose, --log-file, --version

package main

import (
	"flag"
	"io"

	"github.com/mauromedda/kilo-go/internal/config"
)

type cliArgs struct {
	configPath string
	banner     string
	bannerSet  bool
	noBanner   bool
	keys       bool
	verbose    bool
	logFile    string
	version    bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("kilo-go", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.configPath, "config", "", "Read settings from this YAML file only")
	fs.StringVar(&args.banner, "banner", "", "Text centered one third down the screen")
	fs.BoolVar(&args.noBanner, "no-banner", false, "Draw no banner")
	fs.BoolVar(&args.keys, "keys", false, "Print the code of each key pressed; q exits")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.StringVar(&args.logFile, "log-file", "", "Append log lines to this file instead of stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "banner" {
			args.bannerSet = true
		}
	})
	return args, nil
}

// overrides returns the flags that shadow config fields as Settings.
func (a cliArgs) overrides() *config.Settings {
	o := &config.Settings{LogFile: a.logFile}
	switch {
	case a.noBanner:
		empty := ""
		o.Banner = &empty
	case a.bannerSet:
		b := a.banner
		o.Banner = &b
	}
	return o
}
