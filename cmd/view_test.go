package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/grouplist/internal/adapter"
)

func TestViewCmd_UsesDemoGroupsWithoutFiles(t *testing.T) {
	mockUI := useMockUI(t)

	mockUI.EXPECT().View(adapter.DemoGroups()).Return(nil).Once()

	cmd, _, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view"})

	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ColumnsFlag(t *testing.T) {
	cmd, out, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view", "-n", "3", writeFile(t, "groups.yaml", sampleGroupFile)})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "== fruits (3)\n"+
		"    apple | pear | plum\n"+
		"== empty (0)\n"+
		"-- nothing here\n", out.String())
}

func TestViewCmd_FlagOverridesConfig(t *testing.T) {
	cfg := writeFile(t, "grouplist.yaml", "columns: 1\n")

	cmd, out, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"--config", cfg, "view", "--columns", "2", writeFile(t, "groups.yaml", sampleGroupFile)})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "    apple | pear\n    plum\n")
}

func TestViewCmd_InvalidColumns(t *testing.T) {
	useMockUI(t)

	cmd, _, _ := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view", "--columns", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "columns must be at least 1")
}
