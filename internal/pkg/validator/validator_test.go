package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("student@campus.edu"))
	require.True(t, IsValidEmail("first.last+tag@example.co"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidPhone(t *testing.T) {
	require.True(t, IsValidPhone("+1 234 567 8900"))
	require.True(t, IsValidPhone("0123456789"))
	require.False(t, IsValidPhone(""))
	require.False(t, IsValidPhone("12345"))
	require.False(t, IsValidPhone("abc-def-ghij"))
}

func TestIsValidDate(t *testing.T) {
	require.True(t, IsValidDate("2025-01-31"))
	require.False(t, IsValidDate("31-01-2025"))
	require.False(t, IsValidDate("2025/01/31"))
	require.False(t, IsValidDate(""))
}
