package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture seeds the process: the note stock loaded into the vault and
// the customer records loaded into the bank store.
type Fixture struct {
	Vault     VaultFixture      `yaml:"vault"`
	Customers []CustomerFixture `yaml:"customers"`
}

type VaultFixture struct {
	Denominations []int       `yaml:"denominations"`
	Stock         map[int]int `yaml:"stock"`
}

// CustomerFixture balances are whole currency units; they become
// decimal amounts when seeded into the customer store.
type CustomerFixture struct {
	Pin     string `yaml:"pin"`
	Name    string `yaml:"name"`
	Balance int64  `yaml:"balance"`
}

func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	return ParseFixture(data)
}

func ParseFixture(data []byte) (Fixture, error) {
	var fixture Fixture

	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return fixture, nil
}
