package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

const (
	// MvsMainNetName is the name of the Metaverse main network.
	MvsMainNetName = "mvs"
	// MvsTestNetName is the name of the Metaverse test network.
	MvsTestNetName = "mvs-testnet"
)

var (
	// MvsMainNet defines the network parameters for the Metaverse main
	// network. Addresses start with 'M'.
	MvsMainNet = newMvsParams(
		chaincfg.MainNetParams, MvsMainNetName, 0x32, 0x05,
	)
	// MvsTestNet defines the network parameters for the Metaverse test
	// network. Addresses start with 't'.
	MvsTestNet = newMvsParams(
		chaincfg.TestNet3Params, MvsTestNetName, 0x7f, 0xc4,
	)
)

// NetworkByName returns the network parameters for the given name.
func NetworkByName(name string) (*chaincfg.Params, error) {
	switch name {
	case MvsMainNetName:
		return MvsMainNet, nil
	case MvsTestNetName:
		return MvsTestNet, nil
	default:
		return nil, fmt.Errorf(
			"unknown network %q, must be one of %s, %s",
			name, MvsMainNetName, MvsTestNetName,
		)
	}
}

func newMvsParams(
	base chaincfg.Params, name string, pubKeyHashID, scriptHashID byte,
) *chaincfg.Params {
	params := base
	params.Name = name
	params.PubKeyHashAddrID = pubKeyHashID
	params.ScriptHashAddrID = scriptHashID
	params.Bech32HRPSegwit = ""
	return &params
}
