package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/codecrafters-io/splaytree-go/internal/driver"
)

func main() {
	var inPath, outPath string
	flag.StringVar(&inPath, "in", "", "input file (defaults to stdin)")
	flag.StringVar(&outPath, "out", "", "output file (defaults to stdout)")
	flag.Parse()

	in := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			log.Fatalf("opening input: %v", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("opening output: %v", err)
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	defer bw.Flush()

	if err := driver.Run(in, bw); err != nil {
		log.Fatalf("%v", err)
	}
}
