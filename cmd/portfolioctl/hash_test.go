package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/auth"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashCommand(t *testing.T) {
	out, err := runRoot(t, "", "hash", "password")
	require.NoError(t, err)
	assert.Equal(t, auth.DefaultPasswordHash+"\n", out)
}

func TestHashCommand_Stdin(t *testing.T) {
	out, err := runRoot(t, "password\n", "hash")
	require.NoError(t, err)
	assert.Equal(t, auth.DefaultPasswordHash+"\n", out)
}

func TestHashCommand_Empty(t *testing.T) {
	_, err := runRoot(t, "", "hash")
	assert.Error(t, err)
}
