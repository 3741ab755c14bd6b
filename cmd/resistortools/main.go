package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"resistortools/colorcode"
	"resistortools/config"
	"resistortools/resistor"
)

// samples are decoded when no bands are given on the command line.
var samples = [][]colorcode.Color{
	{colorcode.Brown, colorcode.Black, colorcode.Orange, colorcode.Brown},
	{colorcode.Brown, colorcode.Black, colorcode.Black, colorcode.Red, colorcode.Brown},
	{colorcode.Red, colorcode.Black, colorcode.Yellow, colorcode.Brown},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	flags := flag.NewFlagSet("resistortools", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", cfg.Verbose, "Log every decoded band sequence")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: resistortools [-v] [color...]")
		fmt.Fprintf(stderr, "colors: %s\n", colorNames())
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	setupLogging(*verbose, stderr)

	if flags.NArg() == 0 {
		for _, bands := range samples {
			r, err := resistor.Decode(bands...)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			log.Printf("Decoded %v as %#v", bands, r)
			fmt.Fprintln(stdout, r)
		}
		return 0
	}

	r, err := resistor.DecodeNames(flags.Args()...)
	if err != nil {
		fmt.Fprintf(stderr, "Error decoding %s: %v\n", strings.Join(flags.Args(), " "), err)
		return 1
	}
	log.Printf("Decoded %v as %#v", flags.Args(), r)
	fmt.Fprintln(stdout, r)
	return 0
}

// setupLogging sends log output to w when verbose is set and discards it otherwise.
func setupLogging(verbose bool, w io.Writer) {
	log.SetFlags(0)
	log.SetPrefix("resistortools: ")
	if verbose {
		log.SetOutput(w)
		return
	}
	log.SetOutput(io.Discard)
}

func colorNames() string {
	colors := colorcode.Colors()
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
