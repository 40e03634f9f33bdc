package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/hallowlabs/academy-backend/common/utils"
	"github.com/hallowlabs/academy-backend/config"
)

// BadgeContract wraps the on-chain course badge (ERC-1155 style enrollment
// record). The chain is the authoritative enrollment source; the database
// only caches what these calls observe.
type BadgeContract struct {
	client      *ethclient.Client
	config      *config.Config
	contractABI abi.ABI
	address     common.Address
	chainID     *big.Int
}

const badgeABI = `[
    {
        "inputs": [
            {"internalType": "uint256", "name": "tokenId", "type": "uint256"},
            {"internalType": "address", "name": "user", "type": "address"}
        ],
        "name": "isEnrolled",
        "outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
        "stateMutability": "view",
        "type": "function"
    },
    {
        "inputs": [
            {"internalType": "address", "name": "account", "type": "address"},
            {"internalType": "uint256", "name": "id", "type": "uint256"}
        ],
        "name": "balanceOf",
        "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
        "stateMutability": "view",
        "type": "function"
    },
    {
        "inputs": [],
        "name": "owner",
        "outputs": [{"internalType": "address", "name": "", "type": "address"}],
        "stateMutability": "view",
        "type": "function"
    },
    {
        "inputs": [
            {"internalType": "uint256", "name": "tokenId", "type": "uint256"},
            {"internalType": "address", "name": "user", "type": "address"}
        ],
        "name": "enroll",
        "outputs": [],
        "stateMutability": "nonpayable",
        "type": "function"
    }
]`

func NewBadgeContract(cfg *config.Config) (*BadgeContract, error) {
	client, err := connectWithRetry(cfg.BadgeContract.RPCEndpoint)
	if err != nil {
		return nil, err
	}

	parsedABI, err := loadABI(cfg.BadgeContract.ABIPath, badgeABI)
	if err != nil {
		return nil, err
	}

	if !common.IsHexAddress(cfg.BadgeContract.ContractAddress) {
		return nil, fmt.Errorf("invalid badge contract address: %s", cfg.BadgeContract.ContractAddress)
	}

	return &BadgeContract{
		client:      client,
		config:      cfg,
		contractABI: parsedABI,
		address:     common.HexToAddress(cfg.BadgeContract.ContractAddress),
		chainID:     big.NewInt(cfg.BadgeContract.ChainID),
	}, nil
}

// IsEnrolled reads the enrollment flag for a wallet on a badge token id.
func (c *BadgeContract) IsEnrolled(ctx context.Context, tokenID int64, user string) (bool, error) {
	data, err := c.contractABI.Pack("isEnrolled", big.NewInt(tokenID), common.HexToAddress(user))
	if err != nil {
		return false, fmt.Errorf("failed to pack isEnrolled call: %v", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return false, fmt.Errorf("failed to call isEnrolled: %v", err)
	}

	var enrolled bool
	if err := c.contractABI.UnpackIntoInterface(&enrolled, "isEnrolled", result); err != nil {
		return false, fmt.Errorf("failed to unpack isEnrolled result: %v", err)
	}
	return enrolled, nil
}

// BalanceOf reads the badge token balance for a wallet.
func (c *BadgeContract) BalanceOf(ctx context.Context, user string, tokenID int64) (*big.Int, error) {
	data, err := c.contractABI.Pack("balanceOf", common.HexToAddress(user), big.NewInt(tokenID))
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf call: %v", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call balanceOf: %v", err)
	}
	return new(big.Int).SetBytes(result), nil
}

// Enroll submits the enrollment transaction with the operator key and returns
// the tx hash immediately. Confirmation is observed by the reconcile sweep.
func (c *BadgeContract) Enroll(ctx context.Context, tokenID int64, user string) (string, error) {
	data, err := c.contractABI.Pack("enroll", big.NewInt(tokenID), common.HexToAddress(user))
	if err != nil {
		return "", fmt.Errorf("failed to pack enroll call: %v", err)
	}
	return c.sendTx(ctx, data)
}

func (c *BadgeContract) sendTx(ctx context.Context, data []byte) (string, error) {
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
		To:    &c.address,
		Data:  data,
		Value: big.NewInt(0),
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %v", err)
	}

	tx := types.NewTransaction(nonce, c.address, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(c.chainID), privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %v", err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send transaction: %v", err)
	}
	return signedTx.Hash().Hex(), nil
}

func (c *BadgeContract) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// connectWithRetry dials the RPC endpoint, retrying a few times before
// giving up. Boot fails hard when the node is unreachable.
func connectWithRetry(endpoint string) (*ethclient.Client, error) {
	var (
		client *ethclient.Client
		err    error
	)
	for i := 0; i < 3; i++ {
		client, err = connectWithTimeout(endpoint, 30*time.Second)
		if err == nil {
			return client, nil
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to Ethereum node after 3 attempts: %v", err)
}

func connectWithTimeout(endpoint string, timeout time.Duration) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum node: %v", err)
	}
	return client, nil
}

// loadABI prefers an ABI file from disk when configured, falling back to the
// compiled-in definition.
func loadABI(path, fallback string) (abi.ABI, error) {
	if path != "" {
		parsed, err := utils.ReadABI(path)
		if err != nil {
			return abi.ABI{}, err
		}
		return parsed, nil
	}
	parsed, err := abi.JSON(strings.NewReader(fallback))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse contract ABI: %v", err)
	}
	return parsed, nil
}
