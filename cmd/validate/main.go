package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	printDoc := flag.Bool("print", false, "print the compiled directive document")
	preview := flag.Bool("preview", false, "compile in preview mode")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-print] [-preview] <gamestate.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	validator := &GameStateValidator{Preview: *preview}

	doc, err := validator.ValidateFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Game state file is valid! (%d directive sections)\n", len(doc.Sections))
	if *printDoc {
		fmt.Println()
		fmt.Println(doc.String())
	}
}
