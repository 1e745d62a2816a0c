package token

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/infrastructure/auth"
	"github.com/opsportal/opsportal/internal/shared/authorization"
)

const testConfig = `
server:
  timezone: UTC
logger:
  level: error
auth:
  jwt:
    secret: token-command-secret
    issuer: opsportal-test
    access_exp_minutes: 5
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func TestIssue_SignsVerifiableToken(t *testing.T) {
	t.Setenv("ENV", "")
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"issue", "--config", writeConfig(t), "--env", "test", "--user", "42", "--role", "helpdesk", "--wing", "3"})

	require.NoError(t, cmd.Execute())

	signed := strings.TrimSpace(out.String())
	claims, err := auth.NewJWTService("token-command-secret", "opsportal-test", 5).Verify(signed)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, authorization.RoleHelpdesk, claims.Role)
	require.NotNil(t, claims.WingID)
	assert.Equal(t, uint(3), *claims.WingID)
}

func TestIssue_RejectsUnknownRole(t *testing.T) {
	t.Setenv("ENV", "")
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"issue", "--config", writeConfig(t), "--user", "1", "--role", "root"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}
