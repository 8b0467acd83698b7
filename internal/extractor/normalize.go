package extractor

import "creditsea/internal/xmltree"

// rootCandidates are the recognized top-level wrapper keys, most
// specific first. Order encodes priority.
var rootCandidates = []string{
	"creditReport",
	"report",
	"creditData",
	"experianReport",
	"data",
	"INProfileResponse",
}

// Normalize locates the meaningful data scope inside a decoded
// document. The first candidate key that is present and non-empty
// wins; when none match, the whole tree is the scope. Absence of a
// known root is not a failure — the field extractors cope with either
// shape.
func Normalize(tree xmltree.Tree) xmltree.Tree {
	for _, key := range rootCandidates {
		if v := tree.Lookup(key); xmltree.Truthy(v) {
			return xmltree.AsTree(v)
		}
	}
	return tree
}
