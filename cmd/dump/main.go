package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	tokenHash := flag.String("token", "", "Token contract address, LE hex")
	providersHash := flag.String("providers", "", "Providers contract address, LE hex")
	stakingHash := flag.String("staking", "", "Staking contract address, LE hex")
	appstoreHash := flag.String("appstore", "", "Appstore contract address, LE hex")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	}

	contracts := map[string]string{
		"token":     *tokenHash,
		"providers": *providersHash,
		"staking":   *stakingHash,
		"appstore":  *appstoreHash,
	}

	rootDir := filepath.Join("testdata", *chainLabel)

	err := os.MkdirAll(rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, rootDir, contracts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Subnet contracts are successfully dumped to '%s/'\n", rootDir)
}

func _dump(neoBlockchainRPCEndpoint, rootDir string, contracts map[string]string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	for name, hash := range contracts {
		if hash == "" {
			continue
		}

		log.Printf("Processing contract '%s'...\n", name)

		addr, err := util.Uint160DecodeStringLE(hash)
		if err != nil {
			return fmt.Errorf("decode '%s' contract address: %w", name, err)
		}

		err = overtakeContract(b, rootDir, name, addr)
		if err != nil {
			return err
		}
	}

	return nil
}

func overtakeContract(from *remoteBlockchain, rootDir, name string, addr util.Uint160) error {
	var items []storageItem

	err := from.iterateContractStorage(addr, func(key, value []byte) error {
		items = append(items, storageItem{
			Key:   base64.StdEncoding.EncodeToString(key),
			Value: base64.StdEncoding.EncodeToString(value),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate '%s' contract storage: %w", name, err)
	}

	data, err := json.MarshalIndent(items, "", " ")
	if err != nil {
		return fmt.Errorf("encode '%s' contract storage: %w", name, err)
	}

	err = os.WriteFile(filepath.Join(rootDir, name+".json"), data, 0600)
	if err != nil {
		return fmt.Errorf("write '%s' contract dump: %w", name, err)
	}

	return nil
}
