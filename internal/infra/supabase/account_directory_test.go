package supabase

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountDirectory_DeleteUser(t *testing.T) {
	fake := newFakeSupabase(t, fakeReply{status: http.StatusOK, body: `{}`})
	directory := NewAccountDirectory(fake.client(), testLogger())
	userID := uuid.New()

	require.NoError(t, directory.DeleteUser(context.Background(), userID))

	reqs := fake.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Equal(t, "/auth/v1/admin/users/"+userID.String(), reqs[0].Path)
}

func TestAccountDirectory_DeleteUser_Failure(t *testing.T) {
	fake := newFakeSupabase(t, fakeReply{status: http.StatusNotFound, body: `{"msg":"User not found"}`})
	directory := NewAccountDirectory(fake.client(), testLogger())

	err := directory.DeleteUser(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}

func TestAccountDirectory_UnconfiguredIsNoop(t *testing.T) {
	directory := NewAccountDirectory(newClient("", "", "", 0, testLogger()), testLogger())

	assert.NoError(t, directory.DeleteUser(context.Background(), uuid.New()))
}
