package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/renato0307/kctx/internal/kubeconfig"
	"github.com/renato0307/kctx/internal/logging"
	"github.com/renato0307/kctx/internal/ui"
)

// rootOptions holds the flags shared by every command
type rootOptions struct {
	kubeconfig  string
	lockTimeout time.Duration
	logFile     string
	logLevel    string
	logFormat   string
	theme       string

	streams genericiooptions.IOStreams
}

var rootLong = templates.LongDesc(`
	kctx manages the contexts of a kubeconfig file.

	It lists, searches, switches, creates, edits and deletes contexts, sets
	default namespaces, and checks the file for dangling references. Every
	command reads the file afresh and writes it back in one step, keeping a
	.backup copy until the write has succeeded.`)

// NewRootCmd builds the kctx command tree
func NewRootCmd(streams genericiooptions.IOStreams) *cobra.Command {
	o := &rootOptions{streams: streams}

	cmd := &cobra.Command{
		Use:           "kctx",
		Short:         "Manage kubeconfig contexts",
		Long:          rootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.initLogging()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logging.Shutdown()
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.kubeconfig, "kubeconfig", "", "Path to the kubeconfig file (default: $KUBECONFIG or $HOME/.kube/config)")
	flags.DurationVar(&o.lockTimeout, "lock-timeout", 5*time.Second, "How long to wait for another kctx writing the same file")
	flags.StringVar(&o.theme, "theme", "charm", "Picker theme: "+strings.Join(ui.AvailableThemes(), ", "))
	flags.StringVar(&o.logFile, "log-file", "", "Write debug logs to this file (env "+logging.EnvFile+")")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error (env "+logging.EnvLevel+")")
	flags.StringVar(&o.logFormat, "log-format", "", "Log format: text or json (env "+logging.EnvFormat+")")

	cmd.AddCommand(
		newListCmd(o),
		newCurrentCmd(o),
		newUseCmd(o),
		newNamespaceCmd(o),
		newCreateCmd(o),
		newDeleteCmd(o),
		newEditCmd(o),
		newClustersCmd(o),
		newUsersCmd(o),
		newCheckCmd(o),
		newPickCmd(o),
	)
	return cmd
}

func (o *rootOptions) initLogging() error {
	config := logging.ConfigFromEnv()
	if o.logFile != "" {
		config.FilePath = o.logFile
	}
	if o.logLevel != "" {
		config.Level = logging.ParseLevel(o.logLevel)
	}
	if o.logFormat != "" {
		config.Format = logging.ParseFormat(o.logFormat)
	}
	return logging.Init(config)
}

func (o *rootOptions) store() (*kubeconfig.Store, error) {
	return kubeconfig.NewStore(o.kubeconfig)
}

// read opens the store and loads the document
func (o *rootOptions) read() (*kubeconfig.Store, *kubeconfig.Document, error) {
	store, err := o.store()
	if err != nil {
		return nil, nil, err
	}
	doc, err := store.Read()
	if err != nil {
		return nil, nil, err
	}
	return store, doc, nil
}

// writeContext bounds how long a mutation waits for the file lock
func (o *rootOptions) writeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), o.lockTimeout)
}
