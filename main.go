package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command/render"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command/resolve"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command/version"
)

func main() {
	app := &cli.Command{
		Name:    command.AppName,
		Usage:   "Gherkin 步骤参数占位符工具",
		Version: version.Get(),
		Commands: []*cli.Command{
			version.Command,
			resolve.Command,
			render.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
