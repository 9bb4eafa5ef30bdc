package kubeconfig

import "gopkg.in/yaml.v3"

// Document is a parsed kubeconfig file.
//
// Fields the engine reasons about are typed. Every other key, at any level,
// is kept in the matching Extra and written back unchanged, in file order.
type Document struct {
	APIVersion     string         `yaml:"apiVersion,omitempty"`
	Clusters       []NamedCluster `yaml:"clusters"`
	Contexts       []NamedContext `yaml:"contexts"`
	CurrentContext string         `yaml:"current-context"`
	Kind           string         `yaml:"kind,omitempty"`
	Users          []NamedUser    `yaml:"users"`
	Extra          Fields         `yaml:"-"`
}

// NamedContext is a context entry as it appears in the contexts list
type NamedContext struct {
	Name    string  `yaml:"name"`
	Context Context `yaml:"context"`
	Extra   Fields  `yaml:"-"`
}

// Context binds a cluster, a user and an optional default namespace
type Context struct {
	Cluster   string `yaml:"cluster"`
	User      string `yaml:"user"`
	Namespace string `yaml:"namespace,omitempty"`
	Extra     Fields `yaml:"-"`
}

// NamedCluster is a cluster entry as it appears in the clusters list
type NamedCluster struct {
	Name    string  `yaml:"name"`
	Cluster Cluster `yaml:"cluster"`
	Extra   Fields  `yaml:"-"`
}

// Cluster holds connection information for one API server
type Cluster struct {
	Server                   string `yaml:"server,omitempty"`
	CertificateAuthority     string `yaml:"certificate-authority,omitempty"`
	CertificateAuthorityData string `yaml:"certificate-authority-data,omitempty"`
	InsecureSkipTLSVerify    bool   `yaml:"insecure-skip-tls-verify,omitempty"`
	Extra                    Fields `yaml:"-"`
}

// NamedUser is a user entry as it appears in the users list
type NamedUser struct {
	Name  string `yaml:"name"`
	User  User   `yaml:"user"`
	Extra Fields `yaml:"-"`
}

// User holds credential material. It is only inspected to classify the
// authentication method, never used to authenticate.
type User struct {
	Token                 string        `yaml:"token,omitempty"`
	ClientCertificate     string        `yaml:"client-certificate,omitempty"`
	ClientCertificateData string        `yaml:"client-certificate-data,omitempty"`
	ClientKey             string        `yaml:"client-key,omitempty"`
	ClientKeyData         string        `yaml:"client-key-data,omitempty"`
	Username              string        `yaml:"username,omitempty"`
	Password              string        `yaml:"password,omitempty"`
	AuthProvider          *AuthProvider `yaml:"auth-provider,omitempty"`
	Exec                  *ExecConfig   `yaml:"exec,omitempty"`
	Extra                 Fields        `yaml:"-"`
}

// AuthProvider is a legacy auth plugin reference (oidc, gcp, azure)
type AuthProvider struct {
	Name  string `yaml:"name,omitempty"`
	Extra Fields `yaml:"-"`
}

// ExecConfig is a credential plugin invocation
type ExecConfig struct {
	Command string `yaml:"command,omitempty"`
	Extra   Fields `yaml:"-"`
}

// Each type decodes through a method-less copy of itself and lays its keys
// back out in the order they were read.

func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type plain Document
	return decodeMapping(node, (*plain)(d), &d.Extra)
}

func (d Document) MarshalYAML() (any, error) {
	type plain Document
	return encodeMapping(plain(d), d.Extra)
}

func (c *NamedContext) UnmarshalYAML(node *yaml.Node) error {
	type plain NamedContext
	return decodeMapping(node, (*plain)(c), &c.Extra)
}

func (c NamedContext) MarshalYAML() (any, error) {
	type plain NamedContext
	return encodeMapping(plain(c), c.Extra)
}

func (c *Context) UnmarshalYAML(node *yaml.Node) error {
	type plain Context
	return decodeMapping(node, (*plain)(c), &c.Extra)
}

func (c Context) MarshalYAML() (any, error) {
	type plain Context
	return encodeMapping(plain(c), c.Extra)
}

func (c *NamedCluster) UnmarshalYAML(node *yaml.Node) error {
	type plain NamedCluster
	return decodeMapping(node, (*plain)(c), &c.Extra)
}

func (c NamedCluster) MarshalYAML() (any, error) {
	type plain NamedCluster
	return encodeMapping(plain(c), c.Extra)
}

func (c *Cluster) UnmarshalYAML(node *yaml.Node) error {
	type plain Cluster
	return decodeMapping(node, (*plain)(c), &c.Extra)
}

func (c Cluster) MarshalYAML() (any, error) {
	type plain Cluster
	return encodeMapping(plain(c), c.Extra)
}

func (u *NamedUser) UnmarshalYAML(node *yaml.Node) error {
	type plain NamedUser
	return decodeMapping(node, (*plain)(u), &u.Extra)
}

func (u NamedUser) MarshalYAML() (any, error) {
	type plain NamedUser
	return encodeMapping(plain(u), u.Extra)
}

func (u *User) UnmarshalYAML(node *yaml.Node) error {
	type plain User
	return decodeMapping(node, (*plain)(u), &u.Extra)
}

func (u User) MarshalYAML() (any, error) {
	type plain User
	return encodeMapping(plain(u), u.Extra)
}

func (p *AuthProvider) UnmarshalYAML(node *yaml.Node) error {
	type plain AuthProvider
	return decodeMapping(node, (*plain)(p), &p.Extra)
}

func (p AuthProvider) MarshalYAML() (any, error) {
	type plain AuthProvider
	return encodeMapping(plain(p), p.Extra)
}

func (e *ExecConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain ExecConfig
	return decodeMapping(node, (*plain)(e), &e.Extra)
}

func (e ExecConfig) MarshalYAML() (any, error) {
	type plain ExecConfig
	return encodeMapping(plain(e), e.Extra)
}

func (d *Document) findContext(name string) int {
	for i := range d.Contexts {
		if d.Contexts[i].Name == name {
			return i
		}
	}
	return -1
}

func (d *Document) findCluster(name string) *NamedCluster {
	for i := range d.Clusters {
		if d.Clusters[i].Name == name {
			return &d.Clusters[i]
		}
	}
	return nil
}

func (d *Document) findUser(name string) *NamedUser {
	for i := range d.Users {
		if d.Users[i].Name == name {
			return &d.Users[i]
		}
	}
	return nil
}
