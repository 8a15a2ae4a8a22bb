package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cmd := newRootCommand(os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logrus.Fatal(err)
	}
}
