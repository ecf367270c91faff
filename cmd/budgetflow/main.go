package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/budgetflow/budgetflow/internal/calculation"
	"github.com/budgetflow/budgetflow/internal/config"
	"github.com/budgetflow/budgetflow/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "budgetflow %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "budgetflow",
	Short: "Discretionary income waterfall simulator",
	Long:  "Simulates how career, housing, transport, insurance, loan and retirement decisions reduce an annual salary to discretionary income",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run a budget simulation from a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewSimulationEngineWithBrackets(configData.Catalogs, configData.TaxBrackets)
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		result, err := engine.Run(configData.Selection, configData.Fuel, configData.Household)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unsupported format %q (available: %s)", outputFormat, strings.Join(output.FormatterNames(), ", "))
		}

		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		_, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
	},
}

func main() {
	calculateCmd.Flags().String("format", "console", "Output format (console, console-lite, json, csv)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
