// uytext is a command-line front-end for the uyghur-utils library.
//
// Usage:
//
//	uytext -mode translit [text ...]
//	uytext -mode slug [text ...]
//	uytext -mode detect [text ...]
//	uytext -mode numerals [text ...]
//	uytext -mode normalize [text ...]
//
// Each operand is processed independently and one result line is written to
// stdout. With no operands, lines are read from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/azataiot/uyghur-utils/normalize"
	"github.com/azataiot/uyghur-utils/numeral"
	"github.com/azataiot/uyghur-utils/script"
	"github.com/azataiot/uyghur-utils/slug"
	"github.com/azataiot/uyghur-utils/translit"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("uytext: ")

	mode := flag.String("mode", "translit", "operation: translit, slug, detect, numerals, normalize")
	sep := flag.String("sep", "-", "slug separator (slug mode only)")
	maxLen := flag.Int("maxlen", 100, "slug maximum length (slug mode only)")
	flag.Parse()

	run, err := newRunner(*mode, *sep, *maxLen)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			fmt.Fprintln(out, run(arg))
		}
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		fmt.Fprintln(out, run(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}

// newRunner maps a mode name to a line-processing function.
func newRunner(mode, sep string, maxLen int) (func(string) string, error) {
	switch mode {
	case "translit":
		return func(s string) string {
			return translit.Auto(s, nil)
		}, nil
	case "slug":
		if maxLen <= 0 {
			return nil, fmt.Errorf("-maxlen must be positive, got %d", maxLen)
		}
		opts := slug.DefaultOptions()
		opts.Separator = sep
		opts.MaxLength = maxLen
		return func(s string) string {
			return slug.Generate(s, &opts)
		}, nil
	case "detect":
		return func(s string) string {
			return fmt.Sprintf("%s\t%s", script.Detect(s), script.TextDirection(s))
		}, nil
	case "numerals":
		return func(s string) string {
			nums := numeral.ExtractNumbers(s)
			parts := make([]string, len(nums))
			for i, n := range nums {
				parts[i] = numeral.Format(n, numeral.Western)
			}
			return strings.Join(parts, " ")
		}, nil
	case "normalize":
		return normalize.NormalizeForSearch, nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}
