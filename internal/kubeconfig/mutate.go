package kubeconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"k8s.io/apimachinery/pkg/util/validation"
)

// CreateOptions describes a new context
type CreateOptions struct {
	Name      string
	Cluster   string
	User      string
	Namespace string
	// Server is used only when Cluster does not exist yet
	Server string
}

// ModifyOptions lists the changes to apply to a context. Nil fields are left
// untouched; an empty Namespace removes the namespace.
type ModifyOptions struct {
	NewName   *string
	Cluster   *string
	User      *string
	Namespace *string
}

// SwitchContext makes name the current context
func (s *Store) SwitchContext(ctx context.Context, name string) error {
	return s.SwitchContextWithNamespace(ctx, name, "")
}

// SwitchContextWithNamespace makes name the current context, first setting
// its namespace when namespace is non-empty. The file is written once.
func (s *Store) SwitchContextWithNamespace(ctx context.Context, name, namespace string) error {
	if namespace != "" {
		if err := validateNamespace(namespace); err != nil {
			return err
		}
	}

	err := s.update(ctx, func(doc *Document) error {
		i := doc.findContext(name)
		if i < 0 {
			return contextNotFound(name)
		}
		if namespace != "" {
			doc.Contexts[i].Context.Namespace = namespace
		}
		doc.CurrentContext = name
		return nil
	})
	if err != nil {
		return err
	}

	s.recent.Add(name)
	s.log.Info("switched context", "context", name, "namespace", namespace)
	return nil
}

// SetNamespace sets the default namespace of a context
func (s *Store) SetNamespace(ctx context.Context, contextName, namespace string) error {
	if err := validateNamespace(namespace); err != nil {
		return err
	}

	return s.update(ctx, func(doc *Document) error {
		i, err := requireContext(doc, contextName)
		if err != nil {
			return err
		}
		doc.Contexts[i].Context.Namespace = namespace
		s.log.Info("set namespace", "context", contextName, "namespace", namespace)
		return nil
	})
}

// CreateContext appends a new context. Missing clusters and users are
// created as placeholders: the cluster skips TLS verification and the user
// has no credentials, both to be configured afterwards. The current context
// is not changed.
func (s *Store) CreateContext(ctx context.Context, opts CreateOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	return s.update(ctx, func(doc *Document) error {
		if doc.findContext(opts.Name) >= 0 {
			return &Error{
				Kind: KindAlreadyExists,
				Name: opts.Name,
				Msg:  fmt.Sprintf("context %q already exists", opts.Name),
			}
		}

		if doc.findCluster(opts.Cluster) == nil {
			doc.Clusters = append(doc.Clusters, NamedCluster{
				Name: opts.Cluster,
				Cluster: Cluster{
					Server:                opts.Server,
					InsecureSkipTLSVerify: true,
				},
			})
			s.log.Info("created placeholder cluster", "cluster", opts.Cluster)
		}
		if doc.findUser(opts.User) == nil {
			doc.Users = append(doc.Users, NamedUser{Name: opts.User})
			s.log.Info("created placeholder user", "user", opts.User)
		}

		doc.Contexts = append(doc.Contexts, NamedContext{
			Name: opts.Name,
			Context: Context{
				Cluster:   opts.Cluster,
				User:      opts.User,
				Namespace: opts.Namespace,
			},
		})
		s.log.Info("created context", "context", opts.Name)
		return nil
	})
}

func (o CreateOptions) validate() error {
	switch {
	case strings.TrimSpace(o.Name) == "":
		return validationError("context name is required")
	case strings.TrimSpace(o.Cluster) == "":
		return validationError("cluster name is required")
	case strings.TrimSpace(o.User) == "":
		return validationError("user name is required")
	}
	if o.Namespace != "" {
		return validateNamespace(o.Namespace)
	}
	return nil
}

// DeleteContext removes a context. The current context cannot be deleted.
func (s *Store) DeleteContext(ctx context.Context, name string) error {
	err := s.update(ctx, func(doc *Document) error {
		i, err := requireContext(doc, name)
		if err != nil {
			return err
		}
		if doc.CurrentContext == name {
			return &Error{
				Kind: KindCannotDeleteActiveContext,
				Name: name,
				Msg:  fmt.Sprintf("context %q is the current context; switch to another context first", name),
			}
		}
		doc.Contexts = append(doc.Contexts[:i], doc.Contexts[i+1:]...)
		s.log.Info("deleted context", "context", name)
		return nil
	})
	if err != nil {
		return err
	}

	s.recent.Remove(name)
	return nil
}

// ModifyContext renames a context and/or rebinds its cluster, user and
// namespace. Cluster and user references are not checked for existence.
// Renaming the current context moves the current-context pointer with it.
func (s *Store) ModifyContext(ctx context.Context, name string, opts ModifyOptions) error {
	if opts.NewName != nil && strings.TrimSpace(*opts.NewName) == "" {
		return validationError("new context name cannot be empty")
	}
	if opts.Namespace != nil && *opts.Namespace != "" {
		if err := validateNamespace(*opts.Namespace); err != nil {
			return err
		}
	}

	renamed := ""
	err := s.update(ctx, func(doc *Document) error {
		i := doc.findContext(name)
		if i < 0 {
			return contextNotFound(name)
		}
		entry := &doc.Contexts[i]

		if opts.NewName != nil && *opts.NewName != name {
			newName := *opts.NewName
			if doc.findContext(newName) >= 0 {
				return &Error{
					Kind: KindAlreadyExists,
					Name: newName,
					Msg:  fmt.Sprintf("context %q already exists", newName),
				}
			}
			entry.Name = newName
			renamed = newName
			if doc.CurrentContext == name {
				doc.CurrentContext = newName
			}
		}
		if opts.Cluster != nil {
			entry.Context.Cluster = *opts.Cluster
		}
		if opts.User != nil {
			entry.Context.User = *opts.User
		}
		if opts.Namespace != nil {
			entry.Context.Namespace = *opts.Namespace
		}

		s.log.Info("modified context", "context", name, "name", entry.Name)
		return nil
	})
	if err != nil {
		return err
	}

	if renamed != "" {
		s.recent.Rename(name, renamed)
	}
	return nil
}

// ResolveContextName maps a possibly partial name to a context name: an exact
// match wins, otherwise the query must fuzzy-match exactly one context
func ResolveContextName(doc *Document, query string) (string, error) {
	if doc.findContext(query) >= 0 {
		return query, nil
	}

	names := contextNames(doc)
	matches := fuzzy.Find(query, names)
	switch len(matches) {
	case 0:
		return "", contextNotFound(query)
	case 1:
		return matches[0].Str, nil
	}

	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, m.Str)
	}
	return "", validationError("%q matches several contexts: %s", query, strings.Join(candidates, ", "))
}

func requireContext(doc *Document, name string) (int, error) {
	if len(doc.Contexts) == 0 {
		return -1, &Error{Kind: KindContextNotFound, Name: name, Msg: "no contexts found in kubeconfig"}
	}
	i := doc.findContext(name)
	if i < 0 {
		return -1, contextNotFound(name)
	}
	return i, nil
}

func validateNamespace(namespace string) error {
	if namespace == "" {
		return validationError("namespace is required")
	}
	if errs := validation.IsDNS1123Label(namespace); len(errs) > 0 {
		return validationError("invalid namespace %q: %s", namespace, strings.Join(errs, "; "))
	}
	return nil
}
