package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/cobra"

	"bar-ui/chart"
	"bar-ui/config"
	"bar-ui/ui"
)

const appID = "io.github.bar-ui"

var mainWindow fyne.Window

func main() {
	if err := newRootCommand(run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(runFn func(*config.Config) error) *cobra.Command {
	var (
		configPath string
		points     int
		seed       uint64
	)
	cmd := &cobra.Command{
		Use:   "bar-ui",
		Short: "Scrollable, zoomable bar chart of sample data",
		Long: `bar-ui opens a window with a bar chart of randomly generated values.
Use the buttons (or + - 0 and Ctrl+R) to zoom and regenerate the data,
and hover a bar to see its exact value.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if configPath == "" {
				log.Println("Using default config")
			} else {
				log.Printf("Using config %s", configPath)
			}
			if cmd.Flags().Changed("points") {
				cfg.Data.Points = points
			}
			if cmd.Flags().Changed("seed") {
				cfg.Data.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("flags: %w", err)
			}
			return runFn(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVarP(&points, "points", "n", 0, "number of data points to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

func run(cfg *config.Config) error {
	gen, err := cfg.Generator()
	if err != nil {
		return fmt.Errorf("data generator: %w", err)
	}

	a := app.NewWithID(appID)
	a.Settings().SetTheme(theme.LightTheme())
	mainWindow = a.NewWindow(cfg.Window.Title)

	model := chart.NewModel(gen.Generate())
	shell := ui.NewShell(model, gen)
	shell.AddShortcuts(mainWindow.Canvas(), mainWindow.Close)

	mainWindow.SetContent(shell.Content())
	mainWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	mainWindow.CenterOnScreen()
	log.Printf("Showing %d data points", model.Len())
	mainWindow.ShowAndRun()
	log.Println("Application exiting.")
	return nil
}
