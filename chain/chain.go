package chain

const (
	Eth     = "eth"
	Sepolia = "sepolia"
)

const (
	EthChainID     = 1
	SepoliaChainID = 11155111
)

var idToName = map[int]string{
	EthChainID:     Eth,
	SepoliaChainID: Sepolia,
}

// Name maps a chain id to its configured name, empty when unsupported.
func Name(chainID int) string {
	return idToName[chainID]
}
