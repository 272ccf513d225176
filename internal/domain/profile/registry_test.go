package profile

import (
	"testing"

	domainerrors "authcore/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecord struct {
	userID uint64
}

func (s *stubRecord) OwnerID() uint64 { return s.userID }

func newStub(userID uint64) Record { return &stubRecord{userID: userID} }

func TestRegistry_RegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("stub", newStub))

	factory, err := reg.Resolve("stub")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), factory(7).OwnerID())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve("missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProfileTypeUnknown))
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("stub", newStub))

	err := reg.Register("stub", newStub)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileTypeDuplicate))
}

func TestRegistry_Prototypes(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("b", newStub))
	require.NoError(t, reg.Register("a", newStub))

	assert.Equal(t, []string{"a", "b"}, reg.Names())

	protos := reg.Prototypes()
	require.Len(t, protos, 2)
	for _, p := range protos {
		assert.Zero(t, p.OwnerID())
	}
}
