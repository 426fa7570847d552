package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixture(t *testing.T) {
	data := []byte(`
vault:
  denominations: [20, 10, 5]
  stock:
    20: 7
    10: 15
    5: 4

customers:
  - pin: "1234"
    name: Alice
    balance: 120
`)

	fixture, err := ParseFixture(data)
	require.NoError(t, err)

	assert.Equal(t, []int{20, 10, 5}, fixture.Vault.Denominations)
	assert.Equal(t, map[int]int{20: 7, 10: 15, 5: 4}, fixture.Vault.Stock)

	require.Len(t, fixture.Customers, 1)
	assert.Equal(t, "1234", fixture.Customers[0].Pin)
	assert.Equal(t, "Alice", fixture.Customers[0].Name)
	assert.Equal(t, int64(120), fixture.Customers[0].Balance)
}

func TestParseFixtureInvalid(t *testing.T) {
	_, err := ParseFixture([]byte("vault: ["))
	require.Error(t, err)
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture("/nonexistent/fixture.yaml")
	require.Error(t, err)
}
