package main

import (
	"fmt"
	"os"

	"github.com/reeflective/cmdline"
)

func main() {
	parser := cmdline.New(os.Args,
		cmdline.WithName("archiver"),
		cmdline.WithVersion("1.0.0"),
	)

	file := parser.AddOption(&cmdline.Option{
		Name:        "-f",
		AltName:     "--file FILE",
		Description: "File to archive",
		HasValue:    true,
		Required:    true,
	})

	tags := parser.AddOption(&cmdline.Option{
		Name:        "-t",
		AltName:     "--tags TAG[,TAG...]",
		Description: "Tags attached to the archive entry",
		HasValue:    true,
	})

	level := parser.AddOption(&cmdline.Option{
		Name:        "-l",
		AltName:     "--level",
		Description: "Compression level",
		Default:     "default",
		Choices:     []string{"none", "fast", "default", "best"},
	})

	parser.AddSeparator()

	verbose := parser.AddOption(&cmdline.Option{
		Name:        "-d",
		AltName:     "--verbose",
		Description: "Print progress while archiving",
	})

	parser.AddHelpOption()
	parser.AddVersionOption()

	// Prints help or version and exits when requested, exits non-zero
	// when the file option is missing or starved of its value.
	parser.Run()

	fmt.Printf("archiving %s (level %s)\n", parser.GetValue(file), parser.GetValue(level))

	for _, tag := range parser.GetValueList(tags, ",") {
		fmt.Println("tag:", tag)
	}

	if parser.IsSet(verbose) {
		fmt.Println("verbose output enabled")
	}
}
