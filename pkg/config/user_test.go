package config

import (
	"testing"

	"github.com/raywall/starkbank-go/errs"
	"github.com/raywall/starkbank-go/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConf_Build(t *testing.T) {
	privatePEM, _, err := key.Create()
	require.NoError(t, err)

	project, err := UserConf{Type: "project", ID: "1", Environment: "sandbox", PrivateKey: privatePEM}.Build()
	require.NoError(t, err)
	assert.Equal(t, "project/1", project.AccessID())

	org, err := UserConf{Type: "organization", ID: "2", Environment: "production", PrivateKey: privatePEM, WorkspaceID: "3"}.Build()
	require.NoError(t, err)
	assert.Equal(t, "organization/2/workspace/3", org.AccessID())

	_, err = UserConf{Type: "project", ID: "1", Environment: "sandbox", PrivateKey: "invalid"}.Build()
	assert.True(t, errs.IsValidation(err))
}
