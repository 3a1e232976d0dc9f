package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/connect4/internal/connect4/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := connect4(); err != nil {
		logrus.Fatal(err)
	}
}

func connect4() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
