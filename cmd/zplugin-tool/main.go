// Command zplugin-tool loads a plugin build manifest and validates it:
// a required plugin_id and name, and a known format list. It does not
// inspect parameters; hash-collision and range checks on an author's
// Declare() output run in param.NewRegistry, which plugin.NewInstance
// calls. Running this tool catches manifest mistakes before a build,
// rather than only when a host loads the plugin.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zplugin/zplugin/pkg/logging"
	"github.com/zplugin/zplugin/pkg/manifest"
)

var version = "dev"

// CLI defines zplugin-tool's command-line interface.
type CLI struct {
	Version  bool   `short:"v" help:"Show version information"`
	Manifest string `arg:"" name:"manifest" help:"Path to the plugin build manifest (YAML)" type:"existingfile"`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("zplugin-tool"),
		kong.Description("Inspects and validates a zplugin build manifest"),
		kong.UsageOnError(),
	)

	log := logging.New("zplugin-tool")

	if cliArgs.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	f, err := os.Open(cliArgs.Manifest)
	if err != nil {
		log.Error("failed to open manifest", "path", cliArgs.Manifest, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	m, err := manifest.Load(f)
	if err != nil {
		log.Error("invalid manifest", "err", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s)\n", m.Name, m.PluginID)
	fmt.Printf("vendor:   %s\n", m.Vendor)
	fmt.Printf("version:  %s\n", m.Version)
	fmt.Printf("formats:  %v\n", m.Formats)
	log.Info("manifest validated", "plugin_id", m.PluginID, "formats", m.Formats)
}
