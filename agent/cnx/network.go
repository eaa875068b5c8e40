package cnx

import "strings"

const (
	// NoNetwork is the network name of DIDs without a network prefix.
	NoNetwork = "_"

	networkSeparator = ":"
)

// NetworkFromPrefix converts a DID network prefix like "sovrin:" to the
// network name "sovrin". Empty prefix gives NoNetwork.
func NetworkFromPrefix(prefix string) string {
	if prefix == "" {
		return NoNetwork
	}
	return strings.TrimSuffix(prefix, networkSeparator)
}

// PrefixFromNetwork is the inverse of NetworkFromPrefix.
func PrefixFromNetwork(network string) string {
	if network == NoNetwork {
		return ""
	}
	return network + networkSeparator
}
