package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/klog/v2"

	"github.com/renato0307/kctx/internal/logging"
	"github.com/renato0307/kctx/internal/messages"
)

func main() {
	// Suppress klog output from client-go
	klog.InitFlags(nil)
	_ = flag.Set("logtostderr", "false")
	_ = flag.Set("stderrthreshold", "FATAL")
	_ = flag.Set("v", "0")
	defer klog.Flush()

	streams := genericiooptions.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
	if err := NewRootCmd(streams).Execute(); err != nil {
		fmt.Fprintf(streams.ErrOut, "error: %s\n", messages.ForError(err))
		logging.Shutdown()
		klog.Flush()
		os.Exit(1)
	}
}
