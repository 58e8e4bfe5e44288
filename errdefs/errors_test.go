package errdefs

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := Validationf("count must be positive, got %d", -1)
	assert.Equal(t, "count must be positive, got -1", err.Error())
	assert.Equal(t, KindValidation, err.Kind)

	wrapped := Wrapf(KindOutput, io.ErrClosedPipe, "failed to write to %s", "out.txt")
	assert.Equal(t, "failed to write to out.txt: io: read/write on closed pipe", wrapped.Error())
	assert.True(t, errors.Is(wrapped, io.ErrClosedPipe))
}

func TestWrapfNilCause(t *testing.T) {
	assert.NoError(t, Wrapf(KindOutput, nil, "never happens"))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{Validationf("v"), KindValidation},
		{Distributionf("d"), KindDistribution},
		{Generationf("g"), KindGeneration},
		{Outputf("o"), KindOutput},
		{Configurationf("c"), KindConfiguration},
		{fmt.Errorf("outer: %w", Generationf("inner")), KindGeneration},
		{errors.New("plain"), 0},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err))
	}
}

func TestIsDomain(t *testing.T) {
	assert.True(t, IsDomain(Outputf("disk full")))
	assert.True(t, IsDomain(fmt.Errorf("while saving: %w", Configurationf("bad json"))))
	assert.False(t, IsDomain(errors.New("not ours")))
	assert.False(t, IsDomain(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "unknown(99)", Kind(99).String())
}
