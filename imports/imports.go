// Package imports computes the import list a generated model file needs.
package imports

import (
	"slices"
	"strings"
)

// Record is one import line: the model to import and the file it lives in,
// relative to the model package.
type Record struct {
	ModelName string `json:"modelName" yaml:"modelName"`
	FileName  string `json:"fileName" yaml:"fileName"`
}

// FilenameFunc maps a model name to the file that declares it.
type FilenameFunc func(modelName string) string

// Resolve returns one Record per distinct name in deps other than self,
// sorted by model name. Empty names are skipped. A nil filenames func uses
// the model name as the file name.
func Resolve(self string, deps []string, filenames FilenameFunc) []Record {
	seen := make(map[string]struct{}, len(deps))
	records := make([]Record, 0, len(deps))
	for _, dep := range deps {
		if dep == "" || dep == self {
			continue
		}
		if _, ok := seen[dep]; ok {
			continue
		}
		seen[dep] = struct{}{}

		file := dep
		if filenames != nil {
			file = filenames(dep)
		}
		records = append(records, Record{ModelName: dep, FileName: file})
	}
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(a.ModelName, b.ModelName)
	})
	return records
}

// ModelNames returns the model names of records in order.
func ModelNames(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ModelName
	}
	return out
}
