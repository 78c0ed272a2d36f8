package object

import (
	"sort"

	"fortio.org/sets"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MaxSuggestions is the maximum number of "did you mean" candidates returned by Suggest.
const MaxSuggestions = 3

// Suggest returns up to MaxSuggestions known names close to the (uncleaned) symbol,
// closest first. Functions are searched when function is true, constants otherwise.
func Suggest(symbol string, function bool) []string {
	name := CleanSymbol(symbol)
	var names sets.Set[string]
	if function {
		names = FunctionNames()
	} else {
		names = VariableNames()
	}
	candidates := sets.Sort(names)
	// Either the typed name is a subsequence of a known one (avg -> average)
	// or a known one is a subsequence of what was typed (pie -> pi).
	ranks := fuzzy.RankFindFold(name, candidates)
	for _, c := range candidates {
		if len(c) < len(name) && fuzzy.MatchFold(c, name) {
			ranks = append(ranks, fuzzy.Rank{Source: name, Target: c, Distance: fuzzy.LevenshteinDistance(c, name)})
		}
	}
	sort.Stable(ranks)
	res := make([]string, 0, MaxSuggestions)
	for _, r := range ranks {
		if len(res) == MaxSuggestions {
			break
		}
		res = append(res, r.Target)
	}
	return res
}
