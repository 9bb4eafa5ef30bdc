package kubeconfig

import (
	"sort"
	"strings"
)

// Field weights and bonuses used by SearchAndFilterContexts
const (
	nameWeight      = 3
	clusterWeight   = 2
	userWeight      = 2
	namespaceWeight = 1

	emptyQueryScore     = 50
	currentContextBonus = 20
)

// SearchFilters narrows and ranks a context list
type SearchFilters struct {
	Query string
	// Exact-match filters, applied before scoring
	Cluster   string
	User      string
	Namespace string

	ShowOnlyCurrent       bool
	ShowOnlyWithNamespace bool
}

// SearchResult is a context with its relevance score
type SearchResult struct {
	Context       KubernetesContext `json:"context"`
	Score         int               `json:"score"`
	MatchedFields []string          `json:"matchedFields,omitempty"`
}

// FuzzyScore rates how well query matches text, case-insensitively:
// 100 exact, 90 prefix, 70 substring, otherwise an ordered-subsequence score
// that is 0 unless every query character is found in order.
// An empty query scores 1; an empty text scores 0.
func FuzzyScore(text, query string) int {
	if query == "" {
		return 1
	}
	if text == "" {
		return 0
	}

	t := strings.ToLower(text)
	q := strings.ToLower(query)

	switch {
	case t == q:
		return 100
	case strings.HasPrefix(t, q):
		return 90
	case strings.Contains(t, q):
		return 70
	}

	qr := []rune(q)
	score := 0
	qi := 0
	for _, r := range t {
		if qi == len(qr) {
			break
		}
		if r == qr[qi] {
			score += (len(qr) - qi) * 2
			qi++
		}
	}
	if qi < len(qr) {
		return 0
	}
	return score
}

// SearchAndFilterContexts applies filters and returns matching contexts
// ordered by descending score. Ties keep input order.
func SearchAndFilterContexts(contexts []KubernetesContext, filters SearchFilters) []SearchResult {
	query := strings.TrimSpace(filters.Query)
	results := make([]SearchResult, 0, len(contexts))

	for _, c := range contexts {
		if !filters.keep(c) {
			continue
		}

		result := SearchResult{Context: c}
		if query == "" {
			result.Score = emptyQueryScore
		} else {
			result.addField("name", FuzzyScore(c.Name, query)*nameWeight)
			result.addField("cluster", FuzzyScore(c.Cluster, query)*clusterWeight)
			result.addField("user", FuzzyScore(c.User, query)*userWeight)
			if c.Namespace != "" {
				result.addField("namespace", FuzzyScore(c.Namespace, query)*namespaceWeight)
			}
			if result.Score == 0 {
				continue
			}
		}

		if c.Current {
			result.Score += currentContextBonus
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func (f SearchFilters) keep(c KubernetesContext) bool {
	switch {
	case f.Cluster != "" && c.Cluster != f.Cluster:
		return false
	case f.User != "" && c.User != f.User:
		return false
	case f.Namespace != "" && c.Namespace != f.Namespace:
		return false
	case f.ShowOnlyCurrent && !c.Current:
		return false
	case f.ShowOnlyWithNamespace && c.Namespace == "":
		return false
	}
	return true
}

func (r *SearchResult) addField(field string, score int) {
	if score <= 0 {
		return
	}
	r.Score += score
	r.MatchedFields = append(r.MatchedFields, field)
}
