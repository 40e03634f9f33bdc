package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ReadABI parses a contract ABI definition from a JSON file. Deployments can
// point abi_path at a freshly exported artifact instead of recompiling.
func ReadABI(filePath string) (abi.ABI, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to read ABI file: %w", err)
	}

	var parsed abi.ABI
	if err := json.Unmarshal(data, &parsed); err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI JSON: %w", err)
	}

	return parsed, nil
}
