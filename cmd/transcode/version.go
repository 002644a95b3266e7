// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

// init exposes the build version through the root command's --version flag.
func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("transcode {{.Version}}\n")
}
