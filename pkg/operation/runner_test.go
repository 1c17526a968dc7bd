package operation

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOperation records execution order
type fakeOperation struct {
	name string
	err  error
	runs *[]string
}

func (f *fakeOperation) Name() string { return f.name }

func (f *fakeOperation) Execute(ctx context.Context) error {
	*f.runs = append(*f.runs, f.name)
	return f.err
}

func TestRunner_RunsInOrder(t *testing.T) {
	logger := zerolog.Nop()
	runner := NewRunner(&logger)

	var runs []string
	err := runner.Run(context.Background(),
		&fakeOperation{name: "first", runs: &runs},
		&fakeOperation{name: "second", runs: &runs},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, runs)
}

func TestRunner_StopsOnFirstError(t *testing.T) {
	logger := zerolog.Nop()
	runner := NewRunner(&logger)

	var runs []string
	err := runner.Run(context.Background(),
		&fakeOperation{name: "boom", err: assert.AnError, runs: &runs},
		&fakeOperation{name: "never", runs: &runs},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running boom operation")
	assert.Equal(t, []string{"boom"}, runs)
}
