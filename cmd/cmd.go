// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// viewCommand launches the terminal viewer.
func viewCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "view",
		Aliases: []string{"tui", "ui"},
		Usage:   "Browse sheets in an interactive terminal viewer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "File the viewer logs to while it owns the screen",
				Value: "./tmp/wis-tui.log",
			},
		},
		Action: r.View,
	}
}

// serveCommand serves the HTML viewer.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the sheet viewer over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to listen on (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on, 0 picks a free one (overrides server.port)",
			},
			&cli.StringFlag{
				Name:  "base-path",
				Usage: "Path prefix the viewer is mounted under",
				Value: "/",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the viewer in the system browser",
			},
		},
		Action: r.Serve,
	}
}

// listCommand prints the collection.
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print all sheets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, json, csv, markdown, yaml)",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to a file instead of stdout",
			},
		},
		Action: r.List,
	}
}

// showCommand prints a single sheet.
func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print one sheet by id",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Show,
	}
}

// initCommand writes the example configuration.
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Create a config file from the built-in example",
		Action: r.Init,
	}
}
