package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/arbor/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration arbor resolves for the current project.

Values missing from arbor.yaml are filled with defaults. The output is
valid arbor.yaml.`,
		Usage: "arbor config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(resolvedFile(cfg))
	if err != nil {
		return err
	}
	fmt.Printf("# %s\n%s", cfg.Root, out)
	return nil
}

// resolvedFile converts the resolved settings back into file form.
func resolvedFile(cfg *config.Resolved) config.Config {
	return config.Config{
		Version: cfg.Version,
		Mode:    string(cfg.Mode),
		Log:     config.LogConfig{Level: cfg.LogLevel.String()},
		Window: config.WindowConfig{
			Width:  cfg.WindowSize.Width,
			Height: cfg.WindowSize.Height,
			Title:  cfg.WindowTitle,
		},
	}
}
