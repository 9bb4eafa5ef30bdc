package kubeconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: dev
preferences:
  colors: true
clusters:
- name: c1
  cluster:
    server: https://c1.example.com:6443
    certificate-authority-data: Zm9v
    proxy-url: http://proxy:3128
- name: c2
  cluster:
    server: http://c2.example.com
    insecure-skip-tls-verify: true
users:
- name: u1
  user:
    token: abc
- name: u2
  user:
    exec:
      apiVersion: client.authentication.k8s.io/v1
      command: aws
      args: [eks, get-token]
contexts:
- name: dev
  context:
    cluster: c1
    user: u1
    namespace: team-a
- name: prod
  context:
    cluster: c2
    user: u2
`

// writeKubeconfig writes content to a fresh kubeconfig file and returns its path
func writeKubeconfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// newTestStore creates a Store over a fresh kubeconfig file
func newTestStore(t *testing.T, content string) *Store {
	t.Helper()

	store, err := NewStore(writeKubeconfig(t, content))
	require.NoError(t, err)
	return store
}

// mustRead reads the store and fails the test on error
func mustRead(t *testing.T, store *Store) *Document {
	t.Helper()

	doc, err := store.Read()
	require.NoError(t, err)
	return doc
}

// extraValue decodes an unmodelled field for comparison
func extraValue(t *testing.T, fields Fields, key string) any {
	t.Helper()

	var v any
	require.NoError(t, fields.Decode(key, &v))
	return v
}

func ptr(s string) *string {
	return &s
}
