package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, Eth, Name(EthChainID))
	assert.Equal(t, Sepolia, Name(SepoliaChainID))
	assert.Empty(t, Name(0))
	assert.Empty(t, Name(42))
}
