package aggregate

import (
	"sort"

	"junit2html/internal/domain"
)

// SuiteGroup is one suite heading of the report body
type SuiteGroup struct {
	Name string
	domain.Counts
	Classes []ClassGroup
}

// ClassGroup is one class heading inside a suite
type ClassGroup struct {
	Suite string
	Name  string
	domain.Counts
	Cases []domain.TestCaseRecord
}

// Group arranges cases by (suite name, classname) with derived subtotals.
// Suites and classes are sorted by name, cases by name within their class.
// Same-named suites from different inputs end up in the same group.
func Group(cases []domain.TestCaseRecord) []SuiteGroup {
	bySuite := make(map[string]map[string][]domain.TestCaseRecord)
	for _, c := range cases {
		classes, ok := bySuite[c.Suite]
		if !ok {
			classes = make(map[string][]domain.TestCaseRecord)
			bySuite[c.Suite] = classes
		}
		key := c.GroupClass()
		classes[key] = append(classes[key], c)
	}

	groups := make([]SuiteGroup, 0, len(bySuite))
	for _, suite := range sortedKeys(bySuite) {
		classes := bySuite[suite]
		sg := SuiteGroup{Name: suite}

		for _, class := range sortedKeys(classes) {
			members := append([]domain.TestCaseRecord(nil), classes[class]...)
			sort.SliceStable(members, func(i, j int) bool {
				return members[i].Name < members[j].Name
			})

			cg := ClassGroup{Suite: suite, Name: class, Cases: members}
			for _, c := range members {
				cg.AddCase(c)
			}
			sg.Add(cg.Counts)
			sg.Classes = append(sg.Classes, cg)
		}
		groups = append(groups, sg)
	}
	return groups
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
