package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcheck-backend/internal/shared/auth"
)

func TestAdminTokenPrintsVerifiableToken(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--subject", "ops@example.com", "--secret", "cli-secret", "--ttl", "5m"})

	require.NoError(t, cmd.Execute())

	claims, err := auth.VerifyAdminToken("cli-secret", strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
}

func TestAdminTokenRequiresSubject(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--secret", "cli-secret"})

	assert.Error(t, cmd.Execute())
}
