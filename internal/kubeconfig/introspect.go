package kubeconfig

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/renato0307/kctx/internal/logging"
)

// Protocol is the scheme of a cluster's API server URL
type Protocol string

const (
	ProtocolHTTPS   Protocol = "HTTPS"
	ProtocolHTTP    Protocol = "HTTP"
	ProtocolUnknown Protocol = "Unknown"
)

// AuthUnknown is reported for users that are missing or carry no recognised credentials
const AuthUnknown = "Unknown"

// PortUnknown is reported when the server URL gives no port and no scheme to default from
const PortUnknown = "Unknown"

// ClusterDetails describes how a cluster is reached. Derived, never persisted.
type ClusterDetails struct {
	Server   string   `json:"server"`
	IsSecure bool     `json:"isSecure"`
	HasCA    bool     `json:"hasCA"`
	Protocol Protocol `json:"protocol"`
	Hostname string   `json:"hostname"`
	Port     string   `json:"port"`
}

// KubernetesContext is a context entry enriched for display
type KubernetesContext struct {
	Name           string          `json:"name"`
	Cluster        string          `json:"cluster"`
	User           string          `json:"user"`
	Namespace      string          `json:"namespace,omitempty"`
	Current        bool            `json:"current"`
	ClusterDetails *ClusterDetails `json:"clusterDetails,omitempty"`
	UserAuthMethod string          `json:"userAuthMethod"`
}

// ClusterSummary is a cluster projected for selection lists
type ClusterSummary struct {
	Name   string `json:"name"`
	Server string `json:"server"`
}

// UserSummary is a user projected for selection lists
type UserSummary struct {
	Name       string `json:"name"`
	AuthMethod string `json:"authMethod"`
}

// commonNamespaces are always offered, whether or not a context uses them
var commonNamespaces = []string{
	corev1.NamespaceDefault,
	metav1.NamespaceSystem,
	metav1.NamespacePublic,
	corev1.NamespaceNodeLease,
}

// serverPattern extracts scheme, host and port from server strings url.Parse rejects
var serverPattern = regexp.MustCompile(`^(?:([A-Za-z][A-Za-z0-9+.-]*)://)?\[?([^\]/:?#\s]+)\]?(?::(\d+))?`)

// CurrentContextName returns the active context name, or "" when none is set
func (d *Document) CurrentContextName() string {
	return d.CurrentContext
}

// ClusterDetails returns connection details for the named cluster, or nil if
// no cluster has that name
func (d *Document) ClusterDetails(name string) *ClusterDetails {
	c := d.findCluster(name)
	if c == nil {
		return nil
	}

	details := parseServer(c.Cluster.Server)
	details.IsSecure = !c.Cluster.InsecureSkipTLSVerify
	details.HasCA = c.Cluster.CertificateAuthority != "" || c.Cluster.CertificateAuthorityData != ""
	return &details
}

func parseServer(server string) ClusterDetails {
	details := ClusterDetails{
		Server:   server,
		Protocol: ProtocolUnknown,
		Port:     PortUnknown,
	}
	if strings.TrimSpace(server) == "" {
		return details
	}

	var port string
	if u, err := url.Parse(server); err == nil && u.Host != "" {
		details.Protocol = protocolFromScheme(u.Scheme)
		details.Hostname = u.Hostname()
		port = u.Port()
	} else {
		lower := strings.ToLower(server)
		switch {
		case strings.HasPrefix(lower, "https"):
			details.Protocol = ProtocolHTTPS
		case strings.HasPrefix(lower, "http"):
			details.Protocol = ProtocolHTTP
		}
		if m := serverPattern.FindStringSubmatch(server); m != nil {
			details.Hostname = m[2]
			port = m[3]
		}
	}

	switch {
	case port != "":
		details.Port = port
	case details.Protocol == ProtocolHTTPS:
		details.Port = "443"
	case details.Protocol == ProtocolHTTP:
		details.Port = "80"
	}
	return details
}

func protocolFromScheme(scheme string) Protocol {
	switch strings.ToLower(scheme) {
	case "https":
		return ProtocolHTTPS
	case "http":
		return ProtocolHTTP
	default:
		return ProtocolUnknown
	}
}

// UserAuthMethod classifies how the named user authenticates.
//
// Checks run in a fixed order (token, client certificate, basic auth, auth
// provider, exec) and the first hit wins.
func (d *Document) UserAuthMethod(name string) string {
	u := d.findUser(name)
	if u == nil {
		return AuthUnknown
	}
	return authMethod(&u.User)
}

func authMethod(u *User) string {
	switch {
	case u.Token != "":
		return "Token"
	case u.ClientCertificate != "" || u.ClientCertificateData != "":
		return "Client Certificate"
	case u.Username != "" && u.Password != "":
		return "Basic Auth"
	case u.AuthProvider != nil:
		return fmt.Sprintf("Auth Provider (%s)", orUnknown(u.AuthProvider.Name))
	case u.Exec != nil:
		return fmt.Sprintf("Exec (%s)", orUnknown(u.Exec.Command))
	default:
		return AuthUnknown
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// AllContexts returns every context in file order, marked and enriched.
// Dangling cluster or user references leave ClusterDetails nil and the auth
// method Unknown.
func (d *Document) AllContexts() []KubernetesContext {
	current := d.CurrentContextName()
	result := make([]KubernetesContext, 0, len(d.Contexts))
	for _, c := range d.Contexts {
		result = append(result, KubernetesContext{
			Name:           c.Name,
			Cluster:        c.Context.Cluster,
			User:           c.Context.User,
			Namespace:      c.Context.Namespace,
			Current:        current != "" && c.Name == current,
			ClusterDetails: d.ClusterDetails(c.Context.Cluster),
			UserAuthMethod: d.UserAuthMethod(c.Context.User),
		})
	}
	return result
}

// AllNamespaces returns the common namespaces plus every namespace any
// context uses, sorted and de-duplicated
func (d *Document) AllNamespaces() []string {
	namespaces := sets.New(commonNamespaces...)
	for _, c := range d.Contexts {
		if c.Context.Namespace != "" {
			namespaces.Insert(c.Context.Namespace)
		}
	}
	return sets.List(namespaces)
}

// AllClusters lists cluster names with their servers
func (d *Document) AllClusters() []ClusterSummary {
	result := make([]ClusterSummary, 0, len(d.Clusters))
	for _, c := range d.Clusters {
		result = append(result, ClusterSummary{Name: c.Name, Server: c.Cluster.Server})
	}
	return result
}

// AllUsers lists user names with their classified auth method
func (d *Document) AllUsers() []UserSummary {
	result := make([]UserSummary, 0, len(d.Users))
	for i := range d.Users {
		result = append(result, UserSummary{Name: d.Users[i].Name, AuthMethod: authMethod(&d.Users[i].User)})
	}
	return result
}

// Contexts reads the file and returns AllContexts
func (s *Store) Contexts() ([]KubernetesContext, error) {
	t := logging.Start("list contexts", "path", s.path)

	doc, err := s.Read()
	if err != nil {
		logging.End(t)
		return nil, err
	}
	contexts := doc.AllContexts()
	logging.EndWithCount(t, len(contexts))
	return contexts, nil
}

// Namespaces reads the file and returns AllNamespaces
func (s *Store) Namespaces() ([]string, error) {
	doc, err := s.Read()
	if err != nil {
		return nil, err
	}
	return doc.AllNamespaces(), nil
}
