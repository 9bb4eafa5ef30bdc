package kubeconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  int
	}{
		{name: "exact", text: "production", query: "production", want: 100},
		{name: "exact ignores case", text: "Production", query: "pRODUCTION", want: 100},
		{name: "prefix", text: "production", query: "prod", want: 90},
		{name: "substring", text: "eu-production", query: "prod", want: 70},
		{name: "subsequence", text: "production", query: "pdn", want: (3 + 2 + 1) * 2},
		{name: "partial subsequence scores nothing", text: "production", query: "pdx", want: 0},
		{name: "out of order scores nothing", text: "production", query: "np", want: 0},
		{name: "empty query matches everything", text: "anything", query: "", want: 1},
		{name: "empty query and empty text", text: "", query: "", want: 1},
		{name: "empty text", text: "", query: "a", want: 0},
		{name: "query longer than text", text: "ab", query: "abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FuzzyScore(tt.text, tt.query))
		})
	}
}

func TestFuzzyScoreTiersAreOrdered(t *testing.T) {
	exact := FuzzyScore("kind-dev", "kind-dev")
	prefix := FuzzyScore("kind-dev", "kind")
	substring := FuzzyScore("kind-dev", "dev")
	none := FuzzyScore("kind-dev", "z")

	assert.Greater(t, exact, prefix)
	assert.Greater(t, prefix, substring)
	assert.Greater(t, substring, none)
	assert.Zero(t, none)
}

func searchFixture() []KubernetesContext {
	return []KubernetesContext{
		{Name: "dev", Cluster: "kind-local", User: "admin", Namespace: "team-a", Current: true},
		{Name: "prod-eu", Cluster: "eks-eu", User: "sso", Namespace: "payments"},
		{Name: "prod-us", Cluster: "eks-us", User: "sso"},
		{Name: "staging", Cluster: "kind-staging", User: "admin", Namespace: "team-a"},
	}
}

func names(results []SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Context.Name
	}
	return out
}

func TestSearchAndFilterContexts(t *testing.T) {
	tests := []struct {
		name    string
		filters SearchFilters
		want    []string
	}{
		{
			name:    "empty query keeps input order with current first",
			filters: SearchFilters{},
			want:    []string{"dev", "prod-eu", "prod-us", "staging"},
		},
		{
			name:    "name matches outrank cluster matches",
			filters: SearchFilters{Query: "staging"},
			want:    []string{"staging"},
		},
		{
			name:    "prefix on name",
			filters: SearchFilters{Query: "prod"},
			want:    []string{"prod-eu", "prod-us"},
		},
		{
			name:    "query matching nothing excludes everything",
			filters: SearchFilters{Query: "zzz"},
			want:    []string{},
		},
		{
			name:    "cluster filter",
			filters: SearchFilters{Cluster: "eks-us"},
			want:    []string{"prod-us"},
		},
		{
			name:    "user filter",
			filters: SearchFilters{User: "admin"},
			want:    []string{"dev", "staging"},
		},
		{
			name:    "namespace filter",
			filters: SearchFilters{Namespace: "payments"},
			want:    []string{"prod-eu"},
		},
		{
			name:    "only current",
			filters: SearchFilters{ShowOnlyCurrent: true},
			want:    []string{"dev"},
		},
		{
			name:    "only with namespace",
			filters: SearchFilters{ShowOnlyWithNamespace: true},
			want:    []string{"dev", "prod-eu", "staging"},
		},
		{
			name:    "filters apply before scoring",
			filters: SearchFilters{Query: "prod", Namespace: "payments"},
			want:    []string{"prod-eu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchAndFilterContexts(searchFixture(), tt.filters)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSearchScores(t *testing.T) {
	t.Run("empty query gives base score plus current bonus", func(t *testing.T) {
		results := SearchAndFilterContexts(searchFixture(), SearchFilters{})
		require.Len(t, results, 4)

		assert.Equal(t, emptyQueryScore+currentContextBonus, results[0].Score)
		for _, r := range results[1:] {
			assert.Equal(t, emptyQueryScore, r.Score)
			assert.Empty(t, r.MatchedFields)
		}
	})

	t.Run("weighted fields are summed", func(t *testing.T) {
		contexts := []KubernetesContext{{Name: "team-a", Cluster: "c", User: "u", Namespace: "team-a"}}

		results := SearchAndFilterContexts(contexts, SearchFilters{Query: "team-a"})
		require.Len(t, results, 1)
		assert.Equal(t, 100*nameWeight+100*namespaceWeight, results[0].Score)
		assert.Equal(t, []string{"name", "namespace"}, results[0].MatchedFields)
	})

	t.Run("current context bonus applies to matches", func(t *testing.T) {
		contexts := []KubernetesContext{
			{Name: "kind-a", Cluster: "x", User: "y"},
			{Name: "kind-b", Cluster: "x", User: "y", Current: true},
		}

		results := SearchAndFilterContexts(contexts, SearchFilters{Query: "kind"})
		require.Len(t, results, 2)
		assert.Equal(t, "kind-b", results[0].Context.Name)
		assert.Equal(t, results[1].Score+currentContextBonus, results[0].Score)
	})

	t.Run("unset namespace is not scored", func(t *testing.T) {
		contexts := []KubernetesContext{{Name: "a", Cluster: "b", User: "c"}}

		results := SearchAndFilterContexts(contexts, SearchFilters{Query: "a"})
		require.Len(t, results, 1)
		assert.Equal(t, []string{"name"}, results[0].MatchedFields)
	})
}

func TestSearchExcludesNonMatchingContexts(t *testing.T) {
	contexts := searchFixture()

	for _, query := range []string{"prod", "kind", "sso", "team", "x", "admin"} {
		results := SearchAndFilterContexts(contexts, SearchFilters{Query: query})
		kept := make(map[string]bool, len(results))
		for _, r := range results {
			kept[r.Context.Name] = true
			assert.Positive(t, r.Score)
		}

		for _, c := range contexts {
			total := FuzzyScore(c.Name, query) + FuzzyScore(c.Cluster, query) + FuzzyScore(c.User, query)
			if c.Namespace != "" {
				total += FuzzyScore(c.Namespace, query)
			}
			assert.Equal(t, total > 0, kept[c.Name], "query %q context %q", query, c.Name)
		}
	}
}
