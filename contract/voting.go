package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/hallowlabs/academy-backend/config"
)

// VotingContract wraps the per-contest voting contract. Contests deployed
// on-chain carry their own address; reads are issued against that address,
// not the configured default.
type VotingContract struct {
	client      *ethclient.Client
	config      *config.Config
	contractABI abi.ABI
	chainID     *big.Int
}

const votingABI = `[
    {
        "inputs": [
            {"internalType": "address", "name": "user", "type": "address"}
        ],
        "name": "getUserSubmission",
        "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
        "stateMutability": "view",
        "type": "function"
    },
    {
        "inputs": [],
        "name": "submissionCount",
        "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
        "stateMutability": "view",
        "type": "function"
    },
    {
        "inputs": [
            {"internalType": "uint8", "name": "status", "type": "uint8"}
        ],
        "name": "updateContestStatus",
        "outputs": [],
        "stateMutability": "nonpayable",
        "type": "function"
    }
]`

func NewVotingContract(cfg *config.Config) (*VotingContract, error) {
	client, err := connectWithRetry(cfg.VotingContract.RPCEndpoint)
	if err != nil {
		return nil, err
	}

	parsedABI, err := loadABI(cfg.VotingContract.ABIPath, votingABI)
	if err != nil {
		return nil, err
	}

	return &VotingContract{
		client:      client,
		config:      cfg,
		contractABI: parsedABI,
		chainID:     big.NewInt(cfg.VotingContract.ChainID),
	}, nil
}

// GetUserSubmission reads the on-chain submission id a wallet holds in the
// contest deployed at contractAddress. Zero means no on-chain entry.
func (c *VotingContract) GetUserSubmission(ctx context.Context, contractAddress, user string) (int64, error) {
	if !common.IsHexAddress(contractAddress) {
		return 0, fmt.Errorf("invalid contest contract address: %s", contractAddress)
	}
	to := common.HexToAddress(contractAddress)

	data, err := c.contractABI.Pack("getUserSubmission", common.HexToAddress(user))
	if err != nil {
		return 0, fmt.Errorf("failed to pack getUserSubmission call: %v", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to call getUserSubmission: %v", err)
	}

	id := new(big.Int)
	if err := c.contractABI.UnpackIntoInterface(&id, "getUserSubmission", result); err != nil {
		return 0, fmt.Errorf("failed to unpack getUserSubmission result: %v", err)
	}
	return id.Int64(), nil
}

// UpdateContestStatus mirrors an admin status transition on-chain. Returns
// the tx hash without waiting for mining.
func (c *VotingContract) UpdateContestStatus(ctx context.Context, contractAddress string, status uint8) (string, error) {
	if !common.IsHexAddress(contractAddress) {
		return "", fmt.Errorf("invalid contest contract address: %s", contractAddress)
	}
	to := common.HexToAddress(contractAddress)

	data, err := c.contractABI.Pack("updateContestStatus", status)
	if err != nil {
		return "", fmt.Errorf("failed to pack updateContestStatus call: %v", err)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(config.OperatorKey(), "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid operator key: %v", err)
	}

	from := crypto.PubkeyToAddress(privateKey.PublicKey)
	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %v", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %v", err)
	}

	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &to,
		Data:  data,
		Value: big.NewInt(0),
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %v", err)
	}

	tx := types.NewTransaction(nonce, to, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(c.chainID), privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %v", err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send transaction: %v", err)
	}
	return signedTx.Hash().Hex(), nil
}

func (c *VotingContract) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
