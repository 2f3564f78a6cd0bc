package index

import "sort"

type warnFunc func(format string, args ...interface{})

// MergeClassPathSpecs concatenates classpath descriptions.  Descriptions with
// a label seen before are skipped.  When more than one label provides a class
// the first one wins and a warning names every provider.
func MergeClassPathSpecs(warn warnFunc, specs ...*ClassPathSpec) *ClassPathSpec {
	var merged ClassPathSpec

	// labels is used to prevent duplicate entries for a given label.
	labels := make(map[string]bool)

	// providersByClass is used to check if more than one label provides a
	// given class.
	providersByClass := make(map[string][]string)

	for _, spec := range specs {
		if spec.Label == "" {
			warn("missing classpath label (%d classes)", len(spec.Classes))
		} else if labels[spec.Label] {
			warn("duplicate classpath label: %s", spec.Label)
			continue
		}
		labels[spec.Label] = true

		for _, class := range spec.Classes {
			providers := providersByClass[class.Name]
			providersByClass[class.Name] = append(providers, spec.Label)
			if len(providers) > 0 {
				continue
			}
			merged.Classes = append(merged.Classes, class)
		}
	}

	var duplicated []string
	for classname, providers := range providersByClass {
		if len(providers) > 1 {
			duplicated = append(duplicated, classname)
		}
	}
	sort.Strings(duplicated)
	for _, classname := range duplicated {
		warn("class is provided by more than one label: %s: %v", classname, providersByClass[classname])
	}

	return &merged
}
