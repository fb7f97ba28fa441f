//go:build ignore

// e2e_pipeline exercises all five packages against a shared corpus and
// prints a pass/fail summary. Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"fmt"
	"os"

	"github.com/azataiot/uyghur-utils/normalize"
	"github.com/azataiot/uyghur-utils/numeral"
	"github.com/azataiot/uyghur-utils/script"
	"github.com/azataiot/uyghur-utils/slug"
	"github.com/azataiot/uyghur-utils/translit"
)

type check struct {
	name string
	got  string
	want string
}

func main() {
	title := "نوزۇگۇم داستانى"
	dated := "٢٠٢٤-يىل ٥-ئاي"

	checks := []check{
		{"translit/arabic_to_latin", translit.ArabicToLatin(title), "nozugum dastani"},
		{"translit/latin_to_arabic", translit.LatinToArabic("salam"), "سالام"},
		{"translit/auto", translit.Auto("ئۇيغۇرچە", nil), "uyghurche"},
		{"script/detect", script.Detect(title).String(), "uyghur"},
		{"script/direction", script.TextDirection(title).String(), "rtl"},
		{"normalize/search", normalize.NormalizeForSearch("ئۇيغۇر"), "ۇيغۇر"},
		{"numeral/western", numeral.ToWestern(dated), "2024-يىل 5-ئاي"},
		{"numeral/format", numeral.Format(2024, numeral.ArabicIndic), "٢٠٢٤"},
		{"slug/generate", slug.Generate(title, nil), "nozugum-dastani"},
	}

	nums := numeral.ExtractNumbers(dated)
	if len(nums) == 2 {
		checks = append(checks, check{
			"numeral/extract",
			fmt.Sprint(nums),
			fmt.Sprint([]int64{2024, 5}),
		})
	} else {
		checks = append(checks, check{"numeral/extract", fmt.Sprint(nums), "[2024 5]"})
	}

	failed := 0
	for _, c := range checks {
		status := "ok"
		if c.got != c.want {
			status = fmt.Sprintf("FAIL: got %q, want %q", c.got, c.want)
			failed++
		}
		fmt.Printf("%-28s %s\n", c.name, status)
	}

	if failed > 0 {
		fmt.Printf("%d of %d checks failed\n", failed, len(checks))
		os.Exit(1)
	}
	fmt.Printf("all %d checks passed\n", len(checks))
}
