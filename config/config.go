package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type ApiConf struct {
	Port         string   `toml:"port" mapstructure:"port"`
	Mode         string   `toml:"mode" mapstructure:"mode"`
	AllowOrigins []string `toml:"allow_origins" mapstructure:"allow_origins"`
}

type LogConf struct {
	Mode string `toml:"mode" mapstructure:"mode"`
}

type DBConf struct {
	DSN string `toml:"dsn" mapstructure:"dsn"`
}

type ChainConf struct {
	ChainID     int    `toml:"chain_id" mapstructure:"chain_id"`
	Name        string `toml:"name" mapstructure:"name"`
	RPCEndpoint string `toml:"rpc_endpoint" mapstructure:"rpc_endpoint"`
}

type ContractConf struct {
	ContractAddress string `toml:"contract_address" mapstructure:"contract_address"`
	RPCEndpoint     string `toml:"rpc_endpoint" mapstructure:"rpc_endpoint"`
	ChainID         int64  `toml:"chain_id" mapstructure:"chain_id"`
	ABIPath         string `toml:"abi_path" mapstructure:"abi_path"`
}

type AdminConf struct {
	Allowlist []string `toml:"allowlist" mapstructure:"allowlist"`
}

type ReconcileConf struct {
	IntervalMinutes int `toml:"interval_minutes" mapstructure:"interval_minutes"`
}

type Config struct {
	Api            ApiConf       `toml:"api" mapstructure:"api"`
	Log            LogConf       `toml:"log" mapstructure:"log"`
	DB             DBConf        `toml:"db" mapstructure:"db"`
	ChainSupported []ChainConf   `toml:"chain_supported" mapstructure:"chain_supported"`
	BadgeContract  ContractConf  `toml:"badge_contract" mapstructure:"badge_contract"`
	VotingContract ContractConf  `toml:"voting_contract" mapstructure:"voting_contract"`
	Admin          AdminConf     `toml:"admin" mapstructure:"admin"`
	Reconcile      ReconcileConf `toml:"reconcile" mapstructure:"reconcile"`
}

// UnmarshalConfig reads the TOML file at path. Secrets (db DSN, operator key)
// may be overridden through the environment so they stay out of the file.
func UnmarshalConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed on read config file")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal config")
	}

	if dsn := os.Getenv("ACADEMY_DB_DSN"); dsn != "" {
		c.DB.DSN = dsn
	}
	return &c, nil
}

// OperatorKey returns the hex private key used for contract writes. Never
// stored in the config file.
func OperatorKey() string {
	return os.Getenv("ACADEMY_OPERATOR_KEY")
}
