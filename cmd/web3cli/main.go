// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sunscreen-tech/web3"
	"github.com/sunscreen-tech/web3/cmd/web3cli/config"
	"github.com/sunscreen-tech/web3/fhe"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "web3cli",
	Short: "FHE web3 CLI",
	Long: `web3cli manages FHE keys and ciphertexts and submits transactions
to FHE-enabled networks.

Keys and ciphertexts are stored one per file, in the same byte encoding that
smart contracts consume.`,
	Version: fmt.Sprintf("%s (built %s)", version, buildDate),
}

func init() {
	rootCmd.PersistentFlags().String(config.ConfigFileKey, "", "path to an optional JSON config file")
	rootCmd.PersistentFlags().String(config.LogLevelKey, "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String(config.RPCURLKey, "", "RPC endpoint URL")
	rootCmd.PersistentFlags().Uint64(config.ChainIDKey, 0, "chain ID to sign transactions for")
	rootCmd.PersistentFlags().String(config.WalletFileKey, "", "path to the raw signing key file")

	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(balanceCmd)
}

// buildConfig resolves the CLI configuration from flags, env vars, and the
// optional config file.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	return config.NewConfig(v)
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an FHE keypair and a signing key",
	Long: `Generate a fresh FHE keypair and optionally a signing key, and write
each to its own file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		publicPath, _ := cmd.Flags().GetString("public")
		privatePath, _ := cmd.Flags().GetString("private")
		walletPath, _ := cmd.Flags().GetString("wallet")

		runtime, err := fhe.NewRuntime()
		if err != nil {
			return err
		}
		pk, sk, err := runtime.GenerateKeys()
		if err != nil {
			return err
		}
		if err := web3.WriteFile(pk, publicPath); err != nil {
			return err
		}
		if err := web3.WriteFile(sk, privatePath); err != nil {
			return err
		}
		fmt.Printf("FHE keypair written to %s, %s\n", publicPath, privatePath)

		if walletPath != "" {
			wallet, err := web3.NewWallet()
			if err != nil {
				return err
			}
			if err := wallet.WriteFile(walletPath); err != nil {
				return err
			}
			fmt.Printf("Signing key written to %s (address %s)\n", walletPath, wallet.Address())
		}
		return nil
	},
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a 256-bit value under an FHE public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		publicPath, _ := cmd.Flags().GetString("public")
		valueStr, _ := cmd.Flags().GetString("value")
		outPath, _ := cmd.Flags().GetString("out")

		value, err := uint256.FromDecimal(valueStr)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", valueStr, err)
		}
		pk, err := web3.ReadFile[fhe.PublicKey](publicPath)
		if err != nil {
			return err
		}
		runtime, err := fhe.NewRuntime()
		if err != nil {
			return err
		}
		ct, err := runtime.Encrypt(web3.ToRuntimeUint(value), pk)
		if err != nil {
			return err
		}
		if err := web3.WriteFile(ct, outPath); err != nil {
			return err
		}
		fmt.Printf("Ciphertext written to %s\n", outPath)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a ciphertext with an FHE private key",
	RunE: func(cmd *cobra.Command, args []string) error {
		privatePath, _ := cmd.Flags().GetString("private")
		inPath, _ := cmd.Flags().GetString("in")

		sk, err := web3.ReadFile[fhe.PrivateKey](privatePath)
		if err != nil {
			return err
		}
		ct, err := web3.ReadFile[fhe.Ciphertext](inPath)
		if err != nil {
			return err
		}
		runtime, err := fhe.NewRuntime()
		if err != nil {
			return err
		}
		value, err := runtime.Decrypt(ct, sk)
		if err != nil {
			return err
		}
		fmt.Println(value.String())
		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send ether to an address",
	Long: `Send ether from the configured wallet. The amount accepts a unit
suffix ("1ether", "100gwei") or a 0x-prefixed hex wei value; an untagged
amount is interpreted as wei.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := buildLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		toStr, _ := cmd.Flags().GetString("to")
		valueStr, _ := cmd.Flags().GetString("value")
		if !common.IsHexAddress(toStr) {
			return fmt.Errorf("invalid destination address %q", toStr)
		}
		value, err := web3.ParseEtherValue(valueStr)
		if err != nil {
			return err
		}
		wallet, err := web3.ReadWallet(cfg.WalletFile)
		if err != nil {
			return err
		}

		ctx := context.Background()
		client, err := web3.NewClientWithChainID(ctx, cfg.RPCURL, wallet, cfg.ChainID, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		receipt, err := client.SendEther(ctx, common.HexToAddress(toStr), value)
		if err != nil {
			return err
		}
		fmt.Printf("Mined in block %s (tx %s)\n", receipt.BlockNumber, receipt.TxHash)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the wei balance of an address",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := buildLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		addrStr, _ := cmd.Flags().GetString("address")
		var addr common.Address
		switch {
		case addrStr != "":
			if !common.IsHexAddress(addrStr) {
				return fmt.Errorf("invalid address %q", addrStr)
			}
			addr = common.HexToAddress(addrStr)
		case cfg.WalletFile != "":
			wallet, err := web3.ReadWallet(cfg.WalletFile)
			if err != nil {
				return err
			}
			addr = wallet.Address()
		default:
			return fmt.Errorf("either --address or a wallet file must be provided")
		}

		ctx := context.Background()
		eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
		if err != nil {
			return err
		}
		defer eth.Close()

		balance, err := eth.BalanceAt(ctx, addr, nil)
		if err != nil {
			return err
		}
		logger.Debug("Queried balance", zap.String("address", addr.String()))
		fmt.Printf("%s: %s wei\n", addr, balance)
		return nil
	},
}

func init() {
	keygenCmd.Flags().String("public", "public.key", "output path for the FHE public key")
	keygenCmd.Flags().String("private", "private.key", "output path for the FHE private key")
	keygenCmd.Flags().String("wallet", "", "optional output path for a fresh signing key")

	encryptCmd.Flags().String("public", "public.key", "path to the FHE public key")
	encryptCmd.Flags().String("value", "0", "decimal value to encrypt")
	encryptCmd.Flags().String("out", "value.ct", "output path for the ciphertext")

	decryptCmd.Flags().String("private", "private.key", "path to the FHE private key")
	decryptCmd.Flags().String("in", "value.ct", "path to the ciphertext")

	sendCmd.Flags().String("to", "", "destination address")
	sendCmd.Flags().String("value", "", "amount to send, e.g. 1ether or 100gwei")

	balanceCmd.Flags().String("address", "", "address to query (defaults to the wallet address)")
}
