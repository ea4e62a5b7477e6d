package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/smartthermo/internal/config"
	"github.com/muurk/smartthermo/internal/logging"
	"github.com/muurk/smartthermo/internal/thermoconfig"
	"github.com/muurk/smartthermo/internal/ui"
)

// outputFormats lists the accepted --format values
var outputFormats = []string{"summary", "detailed", "compact", "panel", "json", "yaml"}

// Command flags
var (
	configPath   string
	userConfig   bool
	outputFormat string
	logLevel     string
	logToFile    bool
	plainOutput  bool
	forceInit    bool
	demoMode     string
	demoSetPoint int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default $"+config.ConfigPathEnvVar+" or ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&userConfig, "user", false, "Use the per-user configuration file")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "summary", "Output format ("+strings.Join(outputFormats, ", ")+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); default $"+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "Also write logs to the file named in the config's logging section")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Plain text output without boxes or colors")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setModeCmd)
	rootCmd.AddCommand(setPointCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(demoCmd)
}

// showCmd displays the current configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the thermostat configuration",
	Long: `Load the configuration file and display it.

If the file does not exist, a default configuration is written first.`,
	Example: `  # Summary of ./config.yaml
  thermoctl show

  # One feature per line
  thermoctl show --format detailed

  # Machine-readable output
  thermoctl show --config /etc/smartthermo.toml --format json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	path, state, aux, err := loadConfig()
	if err != nil {
		return err
	}

	return printState(cmd.OutOrStdout(), path, state, aux)
}

// setModeCmd changes the operating mode
var setModeCmd = &cobra.Command{
	Use:   "set-mode <mode>",
	Short: "Set the operating mode",
	Long: `Change the thermostat operating mode and save the configuration.

The mode is free-form; common values are off, heat and cool.`,
	Example: `  thermoctl set-mode cool
  thermoctl set-mode heat --config living-room.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSetMode,
}

func runSetMode(cmd *cobra.Command, args []string) error {
	path, state, aux, err := loadConfig()
	if err != nil {
		return err
	}

	before := state.Clone()
	state.ChangeMode(args[0])

	if err := thermoconfig.Save(state, path, aux); err != nil {
		return err
	}

	result := ui.NewSuccessResult("Mode updated", nil).
		AddDetail("File", path).
		AddDetail("Mode", fmt.Sprintf("%s → %s", before.Mode, state.Mode))
	fmt.Fprintln(cmd.OutOrStdout(), result.Render())
	return nil
}

// setPointCmd changes the target temperature
var setPointCmd = &cobra.Command{
	Use:   "set-point <temperature>",
	Short: "Set the target temperature",
	Long: `Change the thermostat set point and save the configuration.

The value must be a whole number. No range is enforced.`,
	Example: `  thermoctl set-point 67

  # Negative values need "--" so they are not read as flags
  thermoctl set-point -- -5`,
	Args: cobra.ExactArgs(1),
	RunE: runSetPoint,
}

func runSetPoint(cmd *cobra.Command, args []string) error {
	temp, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid set point %q: %w", args[0], err)
	}

	path, state, aux, err := loadConfig()
	if err != nil {
		return err
	}

	before := state.Clone()
	state.UpdateSetPoint(temp)

	if err := thermoconfig.Save(state, path, aux); err != nil {
		return err
	}

	result := ui.NewSuccessResult("Set point updated", nil).
		AddDetail("File", path).
		AddDetail("Set Point", fmt.Sprintf("%d → %d", before.SetPoint, state.SetPoint))
	fmt.Fprintln(cmd.OutOrStdout(), result.Render())
	return nil
}

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default SmartThermo configuration.

An existing file is left alone unless --force is given.`,
	Example: `  thermoctl init
  thermoctl init --user
  thermoctl init --config thermo.toml --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if thermoconfig.Exists(path) && !forceInit {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderWarning("Configuration already exists", []ui.Detail{
			{Key: "File", Value: path},
			{Key: "Hint", Value: "use --force to overwrite"},
		}))
		return nil
	}

	state, aux, err := thermoconfig.WriteDefault(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Default configuration written", []ui.Detail{
		{Key: "File", Value: path},
		{Key: "Format", Value: thermoconfig.FormatFor(path)},
		{Key: "Device", Value: thermoconfig.FormatCompact(state)},
		{Key: "Logging", Value: fmt.Sprintf("%s -> %s", aux.Level(), aux.File())},
	}))
	return nil
}

// demoCmd runs the load → display → update → save walkthrough
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Load, update and save the configuration, printing each step",
	Long: `Walk through a full cycle: load the configuration, print its summary,
change the mode and set point, save, and print the summary again.`,
	Example: `  thermoctl demo
  thermoctl demo --mode heat --set-point 72`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoMode, "mode", "cool", "Mode to switch to")
	demoCmd.Flags().IntVar(&demoSetPoint, "set-point", 67, "Set point to apply")
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, state, aux, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Loading config from %s...\n", path)
	fmt.Fprintln(out, thermoconfig.Summarize(state, aux))

	fmt.Fprintln(out, "\nUpdating thermostat state...")
	before := state.Clone()
	state.ChangeMode(demoMode)
	state.UpdateSetPoint(demoSetPoint)
	fmt.Fprintln(out, thermoconfig.FormatDiff(before, state))

	if err := thermoconfig.Save(state, path, aux); err != nil {
		return err
	}

	fmt.Fprintln(out, "Updated and saved new config:")
	fmt.Fprintln(out, thermoconfig.Summarize(state, aux))
	return nil
}

// resolveConfigPath applies --user, --config and SMARTTHERMO_CONFIG
func resolveConfigPath() (string, error) {
	if userConfig {
		if configPath != "" {
			return "", fmt.Errorf("--user and --config cannot be used together")
		}
		path, err := config.UserConfigPath()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user config path: %w", err)
		}
		return path, nil
	}
	return config.ResolvePath(configPath), nil
}

// loadConfig resolves the path, loads the configuration and, with
// --log-to-file, routes logs to the file named in the logging section.
func loadConfig() (string, *thermoconfig.DeviceState, thermoconfig.AuxiliarySettings, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return "", nil, nil, err
	}

	state, aux, err := thermoconfig.Load(path)
	if err != nil {
		return "", nil, nil, err
	}

	if logToFile {
		if err := logging.AttachFile(aux.Level(), aux.File()); err != nil {
			return "", nil, nil, fmt.Errorf("--log-to-file: %s has no usable logging.file: %w", path, err)
		}
		logging.LogConfigEvent(path, "log_file_attached")
	}

	return path, state, aux, nil
}

func printState(out io.Writer, path string, state *thermoconfig.DeviceState, aux thermoconfig.AuxiliarySettings) error {
	switch outputFormat {
	case "detailed":
		fmt.Fprintln(out, thermoconfig.FormatDetailed(state, aux))
	case "compact":
		fmt.Fprintln(out, thermoconfig.FormatCompact(state))
	case "panel":
		fmt.Fprintln(out, ui.NewPanel(state.Name, path, stateDetails(state, aux)).Render())
	case "json":
		data, err := json.MarshalIndent(map[string]any{
			thermoconfig.SectionApp:     state,
			thermoconfig.SectionLogging: aux,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := thermoconfig.MarshalYAML(state, aux)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "summary":
		fmt.Fprintln(out, thermoconfig.Summarize(state, aux))
	default:
		return validateFormat(outputFormat)
	}
	return nil
}

func validateFormat(format string) error {
	if slices.Contains(outputFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid format %q (use %s)", format, strings.Join(outputFormats, ", "))
}

func stateDetails(state *thermoconfig.DeviceState, aux thermoconfig.AuxiliarySettings) []ui.Detail {
	features := "(none)"
	if len(state.Features) > 0 {
		features = fmt.Sprint(state.Features)
	}
	return []ui.Detail{
		{Key: "Version", Value: state.Version},
		{Key: "Features", Value: features},
		{Key: "Mode", Value: state.Mode},
		{Key: "Set Point", Value: strconv.Itoa(state.SetPoint)},
		{Key: "Logging", Value: fmt.Sprintf("%s -> %s", aux.Level(), aux.File())},
	}
}
