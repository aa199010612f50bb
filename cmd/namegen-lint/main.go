package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/model"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint naming convention catalogs (JSON or YAML).\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"templates.json"}
	}

	violations, err := lintPaths(paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(violations) > 0 {
		report(os.Stderr, violations)
		os.Exit(1)
	}
}

func lintPaths(paths []string) ([]violation, error) {
	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(path)
		if err != nil {
			return nil, fmt.Errorf("lint %s: %w", path, err)
		}
		violations = append(violations, linted...)
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	return violations, nil
}

func lintFile(path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cat, err := catalog.Decode(raw, path)
	if err != nil {
		return nil, err
	}

	var result []violation
	for _, issue := range model.LintCatalog(cat) {
		result = append(result, violation{
			file:     path,
			location: formatLocation(issue),
			message:  issue.Message,
		})
	}
	return result, nil
}

func formatLocation(issue model.Issue) string {
	if issue.Field == "" {
		return "entry " + issue.Entry
	}
	return "entry " + issue.Entry + " > " + issue.Field
}

func report(w io.Writer, violations []violation) {
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
}
