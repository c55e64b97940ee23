package guard_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tallyrun/tallyrun/util/guard"
)

func TestRunPassesResultThrough(t *testing.T) {
	t.Parallel()

	got, fault := guard.Run("step", func() (int, error) { return 42, nil })
	require.Nil(t, fault)
	require.Equal(t, 42, got)
}

func TestRunConvertsError(t *testing.T) {
	t.Parallel()

	_, fault := guard.Run("step", func() (int, error) { return 0, errors.New("boom") })
	require.NotNil(t, fault)
	require.Equal(t, "Error", fault.Kind)
	require.Equal(t, "Error:step: boom", fault.Error())
}

type timeoutErr struct{}

func (timeoutErr) Error() string     { return "deadline" }
func (timeoutErr) FaultKind() string { return "Timeout" }

func TestRunHonorsFaultKind(t *testing.T) {
	t.Parallel()

	_, fault := guard.Run("step", func() (int, error) { return 0, timeoutErr{} })
	require.NotNil(t, fault)
	require.Equal(t, "Timeout", fault.Kind)
}

func TestRunRecoversPanic(t *testing.T) {
	t.Parallel()

	got, fault := guard.Run("step", func() (string, error) { panic(fmt.Errorf("bad index")) })
	require.NotNil(t, fault)
	require.Equal(t, "Panic", fault.Kind)
	require.Equal(t, "Panic:step: bad index", fault.Error())
	require.Empty(t, got)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
