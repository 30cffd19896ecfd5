package main

import (
	"io/ioutil"

	homedir "github.com/mitchellh/go-homedir"
)

// fileDigest reads the entire file at path and returns its SHA-1 digest.
// A leading ~ in path is expanded to the user's home directory.
func fileDigest(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	data, err := ioutil.ReadFile(expanded)
	if err != nil {
		return "", err
	}
	return Digest(data)
}

// stringDigest returns the SHA-1 digest of the UTF-8 bytes of s.
func stringDigest(s string) (string, error) {
	return Digest([]byte(s))
}
