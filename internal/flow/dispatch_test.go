package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabcli/internal/hierarchy"
)

type fakeDirect struct {
	calls  int
	target hierarchy.SingleItem
	input  []string
	format string
	err    error
}

func (f *fakeDirect) ImportSingleItem(_ context.Context, target hierarchy.SingleItem, input []string, format string) error {
	f.calls++
	f.target = target
	f.input = input
	f.format = format
	return f.err
}

type fakeCICD struct {
	calls      int
	configFile string
	env        string
	params     string
	err        error
}

func (f *fakeCICD) ImportWithConfigFile(_ context.Context, configFile, env, params string) error {
	f.calls++
	f.configFile = configFile
	f.env = env
	f.params = params
	return f.err
}

func testItem(t *testing.T) *hierarchy.Item {
	t.Helper()
	element, err := hierarchy.ParsePath("ws1.Workspace/nb1.Notebook")
	require.NoError(t, err)
	item, ok := element.(*hierarchy.Item)
	require.True(t, ok)
	return item
}

func TestDispatchDirectFlow(t *testing.T) {
	direct := &fakeDirect{}
	cicd := &fakeCICD{}
	d := NewDispatcher(direct, cicd)

	args := Args{
		Path:   []string{"ws1.Workspace/nb1.Notebook"},
		Input:  []string{` "/path/to/input" `},
		Format: ".ipynb",
	}
	require.NoError(t, d.Dispatch(context.Background(), args, testItem(t)))

	require.Equal(t, 1, direct.calls)
	assert.Equal(t, 0, cicd.calls)
	assert.Equal(t, "ws1.Workspace/nb1.Notebook", direct.target.Path())
	assert.Equal(t, []string{"/path/to/input"}, direct.input, "input must be normalized")
	assert.Equal(t, ".ipynb", direct.format)
}

func TestDispatchDirectFlowRequiresSingleItemTarget(t *testing.T) {
	d := NewDispatcher(&fakeDirect{}, &fakeCICD{})
	args := Args{
		Path:  []string{"ws1.Workspace"},
		Input: []string{"/path/to/input"},
	}

	err := d.Dispatch(context.Background(), args, hierarchy.NewWorkspace("ws1"))
	flowErr := requireFlowError(t, err, KindDispatchRejected)
	assert.Contains(t, flowErr.Error(), "single item")

	err = d.Dispatch(context.Background(), args, nil)
	requireFlowError(t, err, KindDispatchRejected)
}

func TestDispatchCICDFlow(t *testing.T) {
	direct := &fakeDirect{}
	cicd := &fakeCICD{}
	d := NewDispatcher(direct, cicd)

	args := Args{
		ConfigFile: "/cfg.yml",
		Env:        "production",
		Params:     "region=westus",
	}
	// No target context: the CICD flow resolves targets from the config.
	require.NoError(t, d.Dispatch(context.Background(), args, nil))

	assert.Equal(t, 0, direct.calls)
	require.Equal(t, 1, cicd.calls)
	assert.Equal(t, "/cfg.yml", cicd.configFile)
	assert.Equal(t, "production", cicd.env)
	assert.Equal(t, "region=westus", cicd.params)
}

func TestDispatchExecutorErrorsPropagateUnchanged(t *testing.T) {
	importErr := errors.New("item store returned 403 Forbidden")
	d := NewDispatcher(&fakeDirect{err: importErr}, &fakeCICD{})

	args := Args{
		Path:  []string{"ws1.Workspace/nb1.Notebook"},
		Input: []string{"/path/to/input"},
	}
	err := d.Dispatch(context.Background(), args, testItem(t))
	assert.ErrorIs(t, err, importErr)
}

func TestDispatchRejectsShapelessBag(t *testing.T) {
	d := NewDispatcher(&fakeDirect{}, &fakeCICD{})

	// Dispatch only re-derives flow shape; a bag with neither shape is
	// rejected rather than silently dropped.
	err := d.Dispatch(context.Background(), Args{Format: ".ipynb"}, testItem(t))
	requireFlowError(t, err, KindDispatchRejected)
}
