package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/csannotate/app"
	"github.com/ludo-technologies/csannotate/internal/config"
	"github.com/ludo-technologies/csannotate/internal/constants"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a csannotate configuration file",
		Long: `Generate a documented csannotate configuration file with sensible defaults.

By default, creates .csannotate.yaml in the current directory with full
documentation. Use --interactive for a guided setup wizard.

Examples:
  # Create .csannotate.yaml in current directory
  csannotate init

  # Custom output path
  csannotate init --config ci/csannotate.yaml

  # Overwrite existing file
  csannotate init --force

  # Plain config without comments
  csannotate init --minimal

  # Interactive setup wizard
  csannotate init --interactive
  csannotate init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate a plain config without documentation")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")
	cmd.Flags().StringP("pattern", "p", config.DefaultPattern,
		"Checkstyle report glob to write into the config")
	cmd.Flags().String("preset", string(config.BudgetPresetGitHub),
		"Annotation budget preset: github, quiet, errors-only")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	// Get flag values from command
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")
	pattern, _ := cmd.Flags().GetString("pattern")
	presetName, _ := cmd.Flags().GetString("preset")

	preset := config.BudgetPreset(presetName)
	if _, ok := config.GetBudgetPresets()[preset]; !ok {
		return fmt.Errorf("unknown preset %q, must be one of: github, quiet, errors-only", presetName)
	}

	// Run interactive setup if requested
	if interactive {
		var err error
		pattern, preset, configPath, err = runInteractiveSetup(pattern, configPath)
		if err != nil {
			return err
		}
	}

	// Check if file exists
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	// Check if parent directory exists
	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	if minimal {
		cfg := config.DefaultConfig()
		cfg.Input.Pattern = pattern
		cfg.Limits = config.GetBudgetPresets()[preset]
		if err := config.SaveConfig(cfg, configPath); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	} else {
		content := config.GetFullConfigTemplate(pattern, preset)
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	}

	// Print success message with absolute path if possible, otherwise use relative path
	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", displayPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'csannotate' in your workflow after Checkstyle has produced its reports.")

	return nil
}

func runInteractiveSetup(defaultPattern, defaultConfigPath string) (string, config.BudgetPreset, string, error) {
	fmt.Println()
	fmt.Println("csannotate Configuration Setup")
	fmt.Println("==============================")
	fmt.Println()

	patternPrompt := promptui.Prompt{
		Label:   "Checkstyle report pattern",
		Default: defaultPattern,
		Validate: func(input string) error {
			includes, _ := app.SplitPattern(input)
			if len(includes) == 0 {
				return fmt.Errorf("pattern needs at least one glob")
			}
			return nil
		},
	}

	pattern, err := patternPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("pattern input cancelled: %w", err)
	}

	fmt.Println()

	presets := []struct {
		Label       string
		Description string
		Value       config.BudgetPreset
	}{
		{"GitHub limits (recommended)", "50 annotations: 10 errors, 10 warnings, 30 notices", config.BudgetPresetGitHub},
		{"Quiet", "20 annotations, mostly errors", config.BudgetPresetQuiet},
		{"Errors only", "At most 10 error annotations", config.BudgetPresetErrorsOnly},
	}

	presetTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	presetPrompt := promptui.Select{
		Label:     "How many annotations should a run produce?",
		Items:     presets,
		Templates: presetTemplates,
	}

	presetIdx, _, err := presetPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("preset selection cancelled: %w", err)
	}
	selectedPreset := presets[presetIdx].Value

	fmt.Println()

	// Output path prompt
	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("output path input cancelled: %w", err)
	}

	// Use default if empty
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return pattern, selectedPreset, outputPath, nil
}
