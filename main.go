package main

import (
	"fmt"
	"os"
	"strings"

	"protein_lab_go/backbone_trace"
	"protein_lab_go/benchmark"
	"protein_lab_go/candidate_screen"
	version_control "protein_lab_go/config"
	"protein_lab_go/panel_report"
	"protein_lab_go/protein_gen"
	"protein_lab_go/self_check"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Protein Lab - Custom Help Menu
Usage:
  protein_lab <tool> [options]

Tools:
  protein_gen		Generate random candidate protein sequences
  candidate_screen	Screen a candidate panel (fold/activity scores)
  backbone_trace	Emit a deterministic 3D backbone trace
  panel_report		HTML report with score distributions
  self_check		Run deterministic invariant diagnostics

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in associtation with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Protein Lab - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tProtein Lab:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tProtein Generator:\t%s\n", version_control.Protein_Gen)
	fmt.Printf("\tCandidate Screen:\t%s\n", version_control.Candidate_Screen)
	fmt.Printf("\tBackbone Trace:\t\t%s\n", version_control.Backbone_Trace)
	fmt.Printf("\tPanel Report:\t\t%s\n", version_control.Panel_Report)
	fmt.Printf("\tSelf Check:\t\t%s\n", version_control.Self_Check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	//
	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "protein_gen":
			protein_gen.Run(cleanedArgs)
		case "candidate_screen":
			candidate_screen.Run(cleanedArgs)
		case "backbone_trace":
			backbone_trace.Run(cleanedArgs)
		case "panel_report":
			panel_report.Run(cleanedArgs)
		case "self_check", "check":
			self_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("protein_lab %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
