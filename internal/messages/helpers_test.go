package messages

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/kctx/internal/kubeconfig"
)

func TestForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "permission suggests chmod",
			err:      &kubeconfig.Error{Kind: kubeconfig.KindPermission, Msg: "cannot read kubeconfig"},
			contains: []string{"cannot read kubeconfig", "chmod"},
		},
		{
			name:     "parse suggests checking YAML",
			err:      &kubeconfig.Error{Kind: kubeconfig.KindParse, Msg: "invalid kubeconfig YAML"},
			contains: []string{"YAML syntax"},
		},
		{
			name:     "wrapped active-context error",
			err:      fmt.Errorf("delete: %w", &kubeconfig.Error{Kind: kubeconfig.KindCannotDeleteActiveContext, Msg: "busy"}),
			contains: []string{"delete: busy", "kctx use"},
		},
		{
			name:     "plain error is passed through",
			err:      errors.New("boom"),
			contains: []string{"boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForError(tt.err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestForErrorNil(t *testing.T) {
	assert.Empty(t, ForError(nil))
}

func TestEveryUserFacingKindHasAHint(t *testing.T) {
	for _, kind := range []kubeconfig.ErrorKind{
		kubeconfig.KindNotFound,
		kubeconfig.KindEmptyConfig,
		kubeconfig.KindParse,
		kubeconfig.KindRead,
		kubeconfig.KindPermission,
		kubeconfig.KindDiskSpace,
		kubeconfig.KindWrite,
		kubeconfig.KindContextNotFound,
		kubeconfig.KindAlreadyExists,
		kubeconfig.KindCannotDeleteActiveContext,
	} {
		assert.NotEmpty(t, Hint(kind), "kind %s", kind)
	}
	assert.Empty(t, Hint(kubeconfig.KindValidation))
}

func TestStatusCmds(t *testing.T) {
	msg := SuccessCmd("Switched to %s", "prod")()
	assert.Equal(t, StatusMsg{Message: "Switched to prod", Type: MessageTypeSuccess}, msg)

	msg = InfoCmd("Loading")()
	assert.Equal(t, StatusMsg{Message: "Loading", Type: MessageTypeInfo}, msg)

	msg = ErrorCmd(errors.New("boom"))()
	assert.Equal(t, StatusMsg{Message: "boom", Type: MessageTypeError}, msg)
}
