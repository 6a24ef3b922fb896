// main is the entry point for the quizstats CLI.
package main

import (
	"github.com/JayGreentree/canvas-lms/cmd"
	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/internal/quizstore"
)

func main() {
	cmd.SetStoreManager(quizstore.Manager)

	// Close stores before exiting, even on command failure. LogFatal
	// calls os.Exit so a defer would never run.
	err := cmd.Execute()
	quizstore.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
