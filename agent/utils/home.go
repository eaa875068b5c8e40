package utils

import (
	"os"
	"os/user"
	"path/filepath"
)

// IndyBaseDir returns the user's home where libindy keeps its .indy_client
// directory.
func IndyBaseDir() string {
	if v := os.Getenv("HOME"); v != "" {
		return v
	}
	currentUser, err := user.Current()
	if err != nil {
		panic(err)
	}
	return currentUser.HomeDir
}

// IndyClientPath joins elems under ~/.indy_client.
func IndyClientPath(elem ...string) string {
	return filepath.Join(append([]string{IndyBaseDir(), ".indy_client"}, elem...)...)
}
