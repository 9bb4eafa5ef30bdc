package kubeconfig

import (
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/client-go/tools/clientcmd"
)

// Check reports consistency problems in doc without modifying it: duplicate
// names, dangling references, a current-context naming nothing, and whatever
// client-go's validation rejects. The error is non-nil only when the document
// cannot be serialized.
func Check(doc *Document) ([]string, error) {
	var problems []string

	problems = append(problems, duplicates("context", contextNames(doc))...)
	problems = append(problems, duplicates("cluster", clusterNames(doc))...)
	problems = append(problems, duplicates("user", userNames(doc))...)

	for _, c := range doc.Contexts {
		if doc.findCluster(c.Context.Cluster) == nil {
			problems = append(problems, fmt.Sprintf("context %q references missing cluster %q", c.Name, c.Context.Cluster))
		}
		if doc.findUser(c.Context.User) == nil {
			problems = append(problems, fmt.Sprintf("context %q references missing user %q", c.Name, c.Context.User))
		}
	}
	if doc.CurrentContext != "" && doc.findContext(doc.CurrentContext) < 0 {
		problems = append(problems, fmt.Sprintf("current-context %q does not exist", doc.CurrentContext))
	}

	data, err := Marshal(doc)
	if err != nil {
		return problems, err
	}
	// client-go repeats the problems above in its own words
	if len(problems) > 0 {
		return problems, nil
	}
	config, err := clientcmd.Load(data)
	if err != nil {
		return []string{fmt.Sprintf("client-go cannot load kubeconfig: %v", err)}, nil
	}
	if err := clientcmd.Validate(*config); err != nil {
		if agg, ok := err.(utilerrors.Aggregate); ok {
			for _, e := range utilerrors.Flatten(agg).Errors() {
				problems = append(problems, e.Error())
			}
		} else {
			problems = append(problems, err.Error())
		}
	}
	return problems, nil
}

func duplicates(kind string, names []string) []string {
	seen := make(map[string]int, len(names))
	var problems []string
	for _, n := range names {
		seen[n]++
		if seen[n] == 2 {
			problems = append(problems, fmt.Sprintf("duplicate %s name %q", kind, n))
		}
	}
	return problems
}

func contextNames(doc *Document) []string {
	names := make([]string, len(doc.Contexts))
	for i, c := range doc.Contexts {
		names[i] = c.Name
	}
	return names
}

func clusterNames(doc *Document) []string {
	names := make([]string, len(doc.Clusters))
	for i, c := range doc.Clusters {
		names[i] = c.Name
	}
	return names
}

func userNames(doc *Document) []string {
	names := make([]string, len(doc.Users))
	for i, u := range doc.Users {
		names[i] = u.Name
	}
	return names
}
