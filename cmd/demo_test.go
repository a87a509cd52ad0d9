package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/grouplist/internal/adapter"
	m "github.com/mouse-blink/grouplist/internal/model"
)

func TestDemoCmd_SavesDemoGroups(t *testing.T) {
	mockStore := useMockStore(t)
	mockStore.EXPECT().Save(m.Path("out.yaml"), adapter.DemoGroups()).Return(nil).Once()

	cmd, out, _ := newTestRoot(newDemoCmd())
	cmd.SetArgs([]string{"demo", "out.yaml"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "wrote demo groups to out.yaml\n", out.String())
}

func TestDemoCmd_SaveError(t *testing.T) {
	mockStore := useMockStore(t)
	boom := errors.New("boom")
	mockStore.EXPECT().Save(m.Path("out.yaml"), adapter.DemoGroups()).Return(boom).Once()

	cmd, _, _ := newTestRoot(newDemoCmd())
	cmd.SetArgs([]string{"demo", "out.yaml"})

	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestDemoCmd_RequiresPath(t *testing.T) {
	useMockStore(t)

	cmd, _, _ := newTestRoot(newDemoCmd())
	cmd.SetArgs([]string{"demo"})

	require.Error(t, cmd.Execute())
}

func TestDemoCmd_FileCanBeViewed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")

	cmd, _, _ := newTestRoot(newDemoCmd())
	cmd.SetArgs([]string{"demo", path})
	require.NoError(t, cmd.Execute())

	groups, err := adapter.NewGroupStore().Load(context.Background(), m.Path(path))
	require.NoError(t, err)
	require.Equal(t, adapter.DemoGroups(), groups)
}
