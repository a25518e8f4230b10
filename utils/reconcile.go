package utils

// Result is the outcome of comparing the unused-deps list (first file)
// against the used-deps list (second file). Every list is sorted.
type Result struct {
	FirstFile  string `json:"firstFile"`
	SecondFile string `json:"secondFile"`

	Unused  []string `json:"unused"`  // in the first file only
	Used    []string `json:"used"`    // in the second file only
	Shared  []string `json:"shared"`  // in both files
	Curated []string `json:"curated"` // moved out of Unused by a curation rule
}

// ReadJarSet reads non-empty, trimmed lines of path into a set
func ReadJarSet(path string) (JarSet, error) {
	set := make(JarSet)
	err := EachLine(path, func(line string) {
		if name := TrimBlank(line); name != "" {
			set.Add(name)
		}
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Compare partitions the union of both sets into first-only, second-only and shared
func Compare(first, second JarSet) Result {
	return Result{
		Unused:  first.Minus(second).Sorted(),
		Used:    second.Minus(first).Sorted(),
		Shared:  first.Intersect(second).Sorted(),
		Curated: []string{},
	}
}

// CompareDepLists loads both jar lists from disk and compares them
func CompareDepLists(firstFile, secondFile string) (Result, error) {
	first, err := ReadJarSet(firstFile)
	if err != nil {
		return Result{}, err
	}
	second, err := ReadJarSet(secondFile)
	if err != nil {
		return Result{}, err
	}

	res := Compare(first, second)
	res.FirstFile = firstFile
	res.SecondFile = secondFile
	return res, nil
}
