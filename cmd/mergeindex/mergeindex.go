package main

import (
	"flag"
	"log"
	"os"

	"github.com/stackb/java-symtab/pkg/index"
)

var outputFile string

func main() {
	log.SetPrefix("mergeindex: ")
	log.SetFlags(0) // don't print timestamps

	fs := flag.NewFlagSet("mergeindex", flag.ContinueOnError)
	fs.StringVar(&outputFile, "output_file", "", "the output file to write")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if outputFile == "" {
		log.Fatal("-output_file is required")
	}
	if len(fs.Args()) == 0 {
		log.Fatal("positional args should be a non-empty list of classpath description files to merge: args=", os.Args)
	}
	if err := merge(outputFile, fs.Args()); err != nil {
		log.Fatal(err)
	}
}

func merge(outputFile string, filenames []string) error {
	specs := make([]*index.ClassPathSpec, 0, len(filenames))
	for _, filename := range filenames {
		spec, err := index.ReadClassPathSpec(filename)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	merged := index.MergeClassPathSpecs(log.Printf, specs...)

	if err := index.WriteJSONFile(outputFile, merged); err != nil {
		return err
	}
	return nil
}
