package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	jpegtopdf "github.com/Quantaly/jpeg-to-pdf"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	output := flag.String("output", "", "output PDF filename (required)")
	dpi := flag.Float64("dpi", jpegtopdf.DefaultDPI, "pixel-to-point resolution")
	stripExif := flag.Bool("strip-exif", false, "remove EXIF metadata from the embedded images")
	title := flag.String("title", "", "document title")
	verbose := flag.Bool("v", false, "print per-image debug information")
	flag.Parse()

	if *output == "" || flag.NArg() == 0 {
		fmt.Printf("Usage: %s -output <filename> [options] <image.jpg>...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	builder := jpegtopdf.New().
		SetDPI(*dpi).
		StripExif(*stripExif).
		SetTitle(*title)
	builder.Verbose = *verbose

	for _, filename := range flag.Args() {
		image, err := os.ReadFile(filename)
		check(err)
		builder.AddImage(image)
	}

	outFile, err := os.Create(*output)
	check(err)
	defer outFile.Close()

	buffered := bufio.NewWriter(outFile)
	if err := builder.CreatePDF(buffered); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	check(buffered.Flush())
}
