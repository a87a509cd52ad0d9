package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/grouplist/internal/adapter/mocks"
	"github.com/mouse-blink/grouplist/internal/controller"
	controllermocks "github.com/mouse-blink/grouplist/internal/controller/mocks"
	m "github.com/mouse-blink/grouplist/internal/model"
)

const sampleGroupFile = `groups:
  - title: fruits
    items:
      - title: apple
      - title: pear
      - title: plum
  - title: empty
    footer: nothing here
`

func sampleGroups() []m.Group {
	return []m.Group{
		{Title: "fruits", Items: []m.Item{{Title: "apple"}, {Title: "pear"}, {Title: "plum"}}},
		{Title: "empty", Footer: "nothing here"},
	}
}

func newTestRoot(subs ...*cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	for _, sub := range subs {
		cmd.AddCommand(sub)
	}

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func useMockUI(t *testing.T) *controllermocks.MockUI {
	t.Helper()

	mockUI := controllermocks.NewMockUI(t)

	original := newUI
	newUI = func(*cobra.Command, ...controller.Option) controller.UI { return mockUI }

	t.Cleanup(func() { newUI = original })

	return mockUI
}

func useMockStore(t *testing.T) *adaptermocks.MockGroupStore {
	t.Helper()

	mockStore := adaptermocks.NewMockGroupStore(t)

	original := groupStore
	groupStore = mockStore

	t.Cleanup(func() { groupStore = original })

	return mockStore
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	useMockUI(t)

	cmd, _, _ := newTestRoot(newIndexCmd())
	cmd.SetArgs([]string{"--log-level", "loud", "index"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestRootCmd_DebugLogsGoToStderr(t *testing.T) {
	cmd, out, errOut := newTestRoot(newIndexCmd())
	cmd.SetArgs([]string{"--log-level", "debug", "index", writeFile(t, "groups.yaml", sampleGroupFile)})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "TOTAL GROUPS 2")
	require.Contains(t, errOut.String(), `"message":"positions rebuilt"`)
	require.Contains(t, errOut.String(), `"positions":6`)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	groups := writeFile(t, "groups.yaml", sampleGroupFile)
	cfg := writeFile(t, "grouplist.yaml", "columns: 1\ngroups:\n  - "+groups+"\n")

	cmd, out, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"--config", cfg, "view"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "== fruits (3)\n"+
		"    apple\n"+
		"    pear\n"+
		"    plum\n"+
		"== empty (0)\n"+
		"-- nothing here\n", out.String())
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	useMockUI(t)

	cmd, _, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "view"})

	err := cmd.Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePaths(t *testing.T) {
	require.Equal(t, []m.Path{"a.yaml", "b.yaml"}, parsePaths([]string{"a.yaml", "b.yaml"}))
	require.Empty(t, parsePaths(nil))
}
