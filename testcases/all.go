// Package testcases contains named geometry for the tests, benchmarks and
// reference image tools of the scanline rasterizer.
package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"outline": outlineCases,
	"evenodd": evenOddCases,
	"curve":   curveCases,
	"ctm":     ctmCases,
	"lines":   lineCases,
}
